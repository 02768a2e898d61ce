package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"covoit/internal/api/controllers"
	"covoit/internal/config"
	"covoit/internal/models/db_models"
	"covoit/pkg/middleware"
)

type Controllers struct {
	Account   *controllers.AccountController
	Profile   *controllers.ProfileController
	Trip      *controllers.TripController
	Message   *controllers.MessageController
	Admin     *controllers.AdminController
	Reference *controllers.ReferenceController
}

func ProvideRouter(
	cfg config.Config,
	resolver middleware.SessionResolver,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	tripController *controllers.TripController,
	messageController *controllers.MessageController,
	adminController *controllers.AdminController,
	referenceController *controllers.ReferenceController) *gin.Engine {

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	RegisterRoutes(r, middleware.JWTAuthMiddleware(resolver), Controllers{
		Account:   accountController,
		Profile:   profileController,
		Trip:      tripController,
		Message:   messageController,
		Admin:     adminController,
		Reference: referenceController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, ctrl Controllers) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })

	r.GET("/districts", ctrl.Reference.ListDistricts)
	r.GET("/weekdays", ctrl.Reference.ListWeekdays)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", ctrl.Account.Register)
	accountGroup.POST("/login", ctrl.Account.Login)
	accountGroup.POST("/logout", auth, ctrl.Account.Logout)

	profileGroup := r.Group("/profile", auth)
	profileGroup.GET("", ctrl.Profile.GetProfile)
	profileGroup.PUT("", ctrl.Profile.UpdateProfile)

	tripGroup := r.Group("/trips")
	tripGroup.GET("", ctrl.Trip.SearchTrips)
	tripGroup.GET("/mine", auth, ctrl.Trip.ListMyTrips)
	tripGroup.GET("/:id", ctrl.Trip.GetTrip)
	tripGroup.POST("", auth, ctrl.Trip.PublishTrip)
	tripGroup.DELETE("/:id", auth, ctrl.Trip.DeleteTrip)
	tripGroup.POST("/:id/messages", ctrl.Message.SendMessage)
	tripGroup.GET("/:id/messages", auth, ctrl.Message.ListTripMessages)

	adminGroup := r.Group("/admin", auth, middleware.RoleMiddleware(db_models.RoleAdmin))
	adminGroup.GET("/stats", ctrl.Admin.Stats)
	adminGroup.GET("/users", ctrl.Admin.ListUsers)
	adminGroup.PATCH("/users/:id/status", ctrl.Admin.ToggleUserStatus)
	adminGroup.GET("/trips", ctrl.Admin.ListTrips)
	adminGroup.GET("/trips/export", ctrl.Admin.ExportTrips)
	adminGroup.PATCH("/trips/:id/status", ctrl.Admin.ToggleTripStatus)
	adminGroup.DELETE("/trips/:id", ctrl.Admin.DeleteTrip)
	adminGroup.GET("/messages", ctrl.Admin.ListMessages)
}
