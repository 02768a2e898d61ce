package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"covoit/internal/services"
	"covoit/pkg/middleware"
	"covoit/pkg/utils"
)

type AdminController struct {
	adminService services.AdminService
}

func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Stats godoc
// @Summary Users, trips and messages counts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/stats [get]
func (a *AdminController) Stats(c *gin.Context) {
	stats, err := a.adminService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Fetched stats successfully")
}

// ListUsers godoc
// @Summary List accounts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "Fetched users successfully")
}

// ToggleUserStatus godoc
// @Summary Disable or re-enable an account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/users/{id}/status [patch]
func (a *AdminController) ToggleUserStatus(c *gin.Context) {
	user, err := a.adminService.ToggleUserStatus(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, user, "Account status updated")
}

// ListTrips godoc
// @Summary List every trip with its owner
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/trips [get]
func (a *AdminController) ListTrips(c *gin.Context) {
	trips, err := a.adminService.ListTrips(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Fetched trips successfully")
}

// ToggleTripStatus godoc
// @Summary Hide a trip from the listing or publish it again
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/trips/{id}/status [patch]
func (a *AdminController) ToggleTripStatus(c *gin.Context) {
	trip, err := a.adminService.ToggleTripStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip status updated")
}

// ExportTrips godoc
// @Summary Download the trips as CSV
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Router /admin/trips/export [get]
func (a *AdminController) ExportTrips(c *gin.Context) {
	data, err := a.adminService.ExportTripsCSV(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := "trajets-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// DeleteTrip godoc
// @Summary Delete any trip
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/trips/{id} [delete]
func (a *AdminController) DeleteTrip(c *gin.Context) {
	if err := a.adminService.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// ListMessages godoc
// @Summary List every contact message with its trip
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/messages [get]
func (a *AdminController) ListMessages(c *gin.Context) {
	msgs, err := a.adminService.ListMessages(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, msgs, "Fetched messages successfully")
}
