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

type PlanController struct {
	planService services.PlanServiceInterface
	timeout     time.Duration
}

func NewPlanController(planService services.PlanServiceInterface, timeout time.Duration) *PlanController {
	return &PlanController{
		planService: planService,
		timeout:     timeout,
	}
}

// CreatePlan godoc
// @Summary Generate itinerary candidates
// @Description Generate, repair and return itinerary candidates for a destination
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.ScheduleRequest true "Plan request"
// @Success 200 {object} response_models.ScheduleResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/plan [post]
func (p *PlanController) CreatePlan(c *gin.Context) {
	var req request_models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), p.timeout)
	defer cancel()

	resp, err := p.planService.CreatePlan(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Plan generated successfully")
}

// GetSchedules godoc
// @Summary List saved schedules
// @Tags Plan
// @Produce json
// @Success 200 {array} response_models.Schedule
// @Router /api/schedules [get]
func (p *PlanController) GetSchedules(c *gin.Context) {
	schedules := p.planService.ListSchedules(c.Request.Context())
	utils.RespondSuccess(c, schedules, "Schedules fetched successfully")
}
