package controllers

import (
	"github.com/gin-gonic/gin"

	"covoit/internal/models/request_models"
	"covoit/internal/search"
	"covoit/internal/services"
	"covoit/pkg/middleware"
	"covoit/pkg/utils"
)

type TripController struct {
	tripService services.TripService
}

func NewTripController(tripService services.TripService) *TripController {
	return &TripController{tripService: tripService}
}

// SearchTrips godoc
// @Summary List trips
// @Description Filter the listed trips by origin, destination and weekdays. "_all" or an empty value means any district.
// @Tags Trips
// @Produce json
// @Param depart query string false "Origin district"
// @Param arrivee query string false "Destination district"
// @Param jours query []string false "Weekday ids, repeated or comma separated"
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (tc *TripController) SearchTrips(c *gin.Context) {
	criteria := search.CriteriaFromQuery(c.Request.URL.Query())

	res, err := tc.tripService.Search(c.Request.Context(), criteria)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	msg := "Fetched trips successfully"
	if res.Count == 0 {
		msg = "No trip matches these criteria"
	}
	utils.RespondSuccess(c, res, msg)
}

// GetTrip godoc
// @Summary Trip detail
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (tc *TripController) GetTrip(c *gin.Context) {
	trip, err := tc.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Fetched trip successfully")
}

// PublishTrip godoc
// @Summary Publish a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.PublishTripRequest true "Trip"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (tc *TripController) PublishTrip(c *gin.Context) {
	var req request_models.PublishTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindingError(c, err)
		return
	}

	trip, err := tc.tripService.Publish(c.Request.Context(), middleware.SessionFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip published successfully")
}

// ListMyTrips godoc
// @Summary Trips published by the current user
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /trips/mine [get]
func (tc *TripController) ListMyTrips(c *gin.Context) {
	trips, err := tc.tripService.ListMine(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Fetched trips successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Description Only the owner or an administrator may delete a trip
// @Tags Trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (tc *TripController) DeleteTrip(c *gin.Context) {
	if err := tc.tripService.Delete(c.Request.Context(), middleware.SessionFrom(c), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
