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

type ChatController struct {
	chatService services.ChatServiceInterface
	timeout     time.Duration
}

func NewChatController(chatService services.ChatServiceInterface, timeout time.Duration) *ChatController {
	return &ChatController{
		chatService: chatService,
		timeout:     timeout,
	}
}

// EditItinerary godoc
// @Summary Apply a chat edit to an itinerary
// @Description Apply a natural-language edit to one itinerary and return the rewritten text
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Edit request"
// @Success 200 {object} response_models.ChatResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/chat [post]
func (ch *ChatController) EditItinerary(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), ch.timeout)
	defer cancel()

	resp, err := ch.chatService.Edit(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Edit applied successfully")
}
