package handler

import (
	"net/http"

	"tripmap/internal/delivery/api/response"
	"tripmap/internal/domain/entity"
	domainerrors "tripmap/internal/domain/errors"
	"tripmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
}

// LocationHandler serves the pinned locations of the trip.
type LocationHandler struct {
	tripUC usecase.TripUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		tripUC: params.TripUC,
	}
}

// AddLocationRequest represents the request body for pinning a location
type AddLocationRequest struct {
	Name       string   `json:"name" validate:"required,max=200"`
	Lng        *float64 `json:"lng" validate:"required,longitude"`
	Lat        *float64 `json:"lat" validate:"required,latitude"`
	CategoryID *string  `json:"categoryId,omitempty" validate:"omitempty,min=1"`
}

// UpdateLocationRequest represents the request body for a partial location update
type UpdateLocationRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Lng           *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
	Lat           *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	CategoryID    *string  `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	ClearCategory bool     `json:"clearCategory,omitempty"`
}

func (r UpdateLocationRequest) patch() entity.LocationPatch {
	patch := entity.LocationPatch{
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		ClearCategory: r.ClearCategory,
	}
	if r.Lng != nil && r.Lat != nil {
		point := orb.Point{*r.Lng, *r.Lat}
		patch.Coordinates = &point
	}

	return patch
}

// ListLocations returns the pinned locations in insertion order.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.tripUC.Locations())
}

// AddLocation pins a new location.
func (h *LocationHandler) AddLocation(c echo.Context) error {
	var req AddLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	location, outcome := h.tripUC.AddLocation(ctx, usecase.AddLocationInput{
		Name:        req.Name,
		Coordinates: orb.Point{*req.Lng, *req.Lat},
		CategoryID:  req.CategoryID,
	})

	recordMutation(c, "add_location", location.ID, outcome)

	return response.Success(c, http.StatusCreated, mutationResult{Item: location, Outcome: outcome})
}

// UpdateLocation applies a partial update to a location.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	id := c.Param("id")

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if (req.Lng == nil) != (req.Lat == nil) {
		return response.BadRequest(c, "VALIDATION_ERROR", "lng and lat must be provided together")
	}

	patch := req.patch()
	if patch.IsEmpty() {
		return response.BadRequest(c, "EMPTY_PATCH", "At least one field must be provided")
	}

	location, outcome := h.tripUC.UpdateLocation(c.Request().Context(), id, patch)
	if location == nil {
		return response.HandleAppError(c, domainerrors.ErrLocationNotFound)
	}

	recordMutation(c, "update_location", id, outcome)

	return response.Success(c, http.StatusOK, mutationResult{Item: location, Outcome: outcome})
}

// RemoveLocation deletes a location and its distances.
func (h *LocationHandler) RemoveLocation(c echo.Context) error {
	id := c.Param("id")
	outcome := h.tripUC.RemoveLocation(c.Request().Context(), id)

	recordMutation(c, "remove_location", id, outcome)

	return response.Success(c, http.StatusOK, mutationResult{Outcome: outcome})
}

// ClearLocations deletes every location.
func (h *LocationHandler) ClearLocations(c echo.Context) error {
	outcome := h.tripUC.ClearLocations(c.Request().Context())

	recordMutation(c, "clear_locations", "", outcome)

	return response.Success(c, http.StatusOK, mutationResult{Outcome: outcome})
}
