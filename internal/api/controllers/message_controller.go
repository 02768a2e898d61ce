package controllers

import (
	"github.com/gin-gonic/gin"

	"covoit/internal/models/request_models"
	"covoit/internal/services"
	"covoit/pkg/middleware"
	"covoit/pkg/utils"
)

type MessageController struct {
	messageService services.MessageService
}

func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// SendMessage godoc
// @Summary Contact a trip owner
// @Tags Messages
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.ContactMessageRequest true "Message"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id}/messages [post]
func (m *MessageController) SendMessage(c *gin.Context) {
	var req request_models.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	msg, err := m.messageService.Send(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, msg, "Message sent successfully")
}

// ListTripMessages godoc
// @Summary Messages received for a trip
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /trips/{id}/messages [get]
func (m *MessageController) ListTripMessages(c *gin.Context) {
	msgs, err := m.messageService.ListForTrip(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, msgs, "Fetched messages successfully")
}
