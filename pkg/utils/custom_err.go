package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrOracleUnavailable      = errors.New("text oracle unavailable")
	ErrOracleTimeout          = errors.New("text oracle timeout")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected ai response")
	ErrPlaceNotFound          = errors.New("place not found")
	ErrRateLimited            = errors.New("place search rate limited")
)
