package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"justgo/internal/models/request_models"
	"justgo/internal/services"
	"justgo/pkg/utils"
)

type PlacesController struct {
	recommendService services.RecommendServiceInterface
	timeout          time.Duration
}

func NewPlacesController(recommendService services.RecommendServiceInterface, timeout time.Duration) *PlacesController {
	return &PlacesController{
		recommendService: recommendService,
		timeout:          timeout,
	}
}

func (p *PlacesController) bind(c *gin.Context) (request_models.RecommendRequest, bool) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}

// RecommendAttractions godoc
// @Summary Recommend attractions for a destination
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.RecommendRequest true "Recommendation request"
// @Success 200 {object} response_models.RecommendResponse
// @Router /api/recommend/attractions [post]
func (p *PlacesController) RecommendAttractions(c *gin.Context) {
	req, ok := p.bind(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), p.timeout)
	defer cancel()

	resp, err := p.recommendService.Attractions(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Attractions fetched successfully")
}

// RecommendRestaurants godoc
// @Summary Recommend restaurants for a destination
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.RecommendRequest true "Recommendation request"
// @Success 200 {object} response_models.RecommendResponse
// @Router /api/recommend/restaurants [post]
func (p *PlacesController) RecommendRestaurants(c *gin.Context) {
	req, ok := p.bind(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), p.timeout)
	defer cancel()

	resp, err := p.recommendService.Restaurants(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Restaurants fetched successfully")
}

// RecommendPlaces godoc
// @Summary Recommend attractions and restaurants together
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.RecommendRequest true "Recommendation request"
// @Success 200 {object} response_models.RecommendResponse
// @Router /api/recommend/places [post]
func (p *PlacesController) RecommendPlaces(c *gin.Context) {
	req, ok := p.bind(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), p.timeout)
	defer cancel()

	resp, err := p.recommendService.Places(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Places fetched successfully")
}

// SaveSelection godoc
// @Summary Pin selected places for a destination
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.SelectionRequest true "Selection request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/selection/places [post]
func (p *PlacesController) SaveSelection(c *gin.Context) {
	var req request_models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := p.recommendService.SaveSelection(req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Selection saved successfully")
}
