package handler

import (
	"net/http"

	"tripmap/internal/delivery/api/response"
	"tripmap/internal/domain/entity"
	domainerrors "tripmap/internal/domain/errors"
	"tripmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
}

// CategoryHandler serves the location categories of the trip.
type CategoryHandler struct {
	tripUC usecase.TripUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{
		tripUC: params.TripUC,
	}
}

// AddCategoryRequest represents the request body for creating a category
type AddCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest represents the request body for a partial category update
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// ListCategories returns the categories in insertion order.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.tripUC.Categories())
}

// AddCategory creates a category.
func (h *CategoryHandler) AddCategory(c echo.Context) error {
	var req AddCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, outcome := h.tripUC.AddCategory(c.Request().Context(), usecase.AddCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})

	recordMutation(c, "add_category", category.ID, outcome)

	return response.Success(c, http.StatusCreated, mutationResult{Item: category, Outcome: outcome})
}

// UpdateCategory renames or recolors a category.
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id := c.Param("id")

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	patch := entity.CategoryPatch{Name: req.Name, Color: req.Color}
	if patch.IsEmpty() {
		return response.BadRequest(c, "EMPTY_PATCH", "At least one field must be provided")
	}

	category, outcome := h.tripUC.UpdateCategory(c.Request().Context(), id, patch)
	if category == nil {
		return response.HandleAppError(c, domainerrors.ErrCategoryNotFound)
	}

	recordMutation(c, "update_category", id, outcome)

	return response.Success(c, http.StatusOK, mutationResult{Item: category, Outcome: outcome})
}

// RemoveCategory deletes a category and uncategorizes its locations.
func (h *CategoryHandler) RemoveCategory(c echo.Context) error {
	id := c.Param("id")
	outcome := h.tripUC.RemoveCategory(c.Request().Context(), id)

	recordMutation(c, "remove_category", id, outcome)

	return response.Success(c, http.StatusOK, mutationResult{Outcome: outcome})
}

// ClearCategories deletes every category.
func (h *CategoryHandler) ClearCategories(c echo.Context) error {
	outcome := h.tripUC.ClearCategories(c.Request().Context())

	recordMutation(c, "clear_categories", "", outcome)

	return response.Success(c, http.StatusOK, mutationResult{Outcome: outcome})
}
