package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequestWireFormat(t *testing.T) {
	payload := `{
		"message": "저녁을 가볍게 해줘",
		"itineraryIndex": 1,
		"itineraryText": "2025-08-13 (Day1)",
		"context": {"location": "강릉", "days": 2, "budget": 300000}
	}`

	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, 1, req.ItineraryIndex)
	assert.Equal(t, "2025-08-13 (Day1)", req.ItineraryText)
	require.NotNil(t, req.Context)
	assert.Equal(t, "강릉", req.Context.Location)
}

func TestChatRequestItineraryTextOptional(t *testing.T) {
	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(`{"message":"일정 바꿔줘"}`), &req))
	assert.Empty(t, req.ItineraryText)
}
