package controllers

import (
	"github.com/gin-gonic/gin"

	"covoit/internal/models/domain_models"
	"covoit/pkg/utils"
)

type ReferenceController struct{}

func NewReferenceController() *ReferenceController {
	return &ReferenceController{}
}

// ListDistricts godoc
// @Summary Abidjan districts in display order
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /districts [get]
func (r *ReferenceController) ListDistricts(c *gin.Context) {
	utils.RespondSuccess(c, domain_models.Districts, "Fetched districts successfully")
}

// ListWeekdays godoc
// @Summary Weekdays with labels
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /weekdays [get]
func (r *ReferenceController) ListWeekdays(c *gin.Context) {
	utils.RespondSuccess(c, domain_models.Weekdays, "Fetched weekdays successfully")
}
