package controllers

import (
	"github.com/gin-gonic/gin"

	"covoit/internal/models/request_models"
	"covoit/internal/services"
	"covoit/pkg/middleware"
	"covoit/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileService
}

func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Current user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if session == nil {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	profile, err := p.profileService.GetProfile(c.Request.Context(), session.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update names and contact phone
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /profile [put]
func (p *ProfileController) UpdateProfile(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if session == nil {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	profile, err := p.profileService.UpdateProfile(c.Request.Context(), session.UserID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}
