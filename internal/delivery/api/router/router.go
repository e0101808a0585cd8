// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tripmap/internal/delivery/api/middleware"
	"tripmap/internal/delivery/api/router/handler"
	"tripmap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	TripHandler     *handler.TripHandler
	LocationHandler *handler.LocationHandler
	CategoryHandler *handler.CategoryHandler
	ShareHandler    *handler.ShareHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	tripHandler     *handler.TripHandler
	locationHandler *handler.LocationHandler
	categoryHandler *handler.CategoryHandler
	shareHandler    *handler.ShareHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		tripHandler:     params.TripHandler,
		locationHandler: params.LocationHandler,
		categoryHandler: params.CategoryHandler,
		shareHandler:    params.ShareHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
	}

	tripGroup := e.Group("/trip")
	tripGroup.Use(r.authMiddleware.Authenticate)
	{
		tripGroup.GET("/state", r.tripHandler.State)
		tripGroup.GET("/distances", r.tripHandler.Distances)
		tripGroup.POST("/routes", r.tripHandler.FetchRoutes)
		tripGroup.GET("/share/qr", r.shareHandler.ShareQR)
	}

	locationsGroup := tripGroup.Group("/locations")
	{
		locationsGroup.GET("", r.locationHandler.ListLocations)
		locationsGroup.POST("", r.locationHandler.AddLocation)
		locationsGroup.DELETE("", r.locationHandler.ClearLocations)
		locationsGroup.PATCH("/:id", r.locationHandler.UpdateLocation)
		locationsGroup.DELETE("/:id", r.locationHandler.RemoveLocation)
	}

	categoriesGroup := tripGroup.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.POST("", r.categoryHandler.AddCategory)
		categoriesGroup.DELETE("", r.categoryHandler.ClearCategories)
		categoriesGroup.PATCH("/:id", r.categoryHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.categoryHandler.RemoveCategory)
	}
}
