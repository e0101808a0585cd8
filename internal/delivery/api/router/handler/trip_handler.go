package handler

import (
	"log/slog"
	"net/http"

	"tripmap/internal/delivery/api/response"
	deliverycontext "tripmap/internal/delivery/context"
	"tripmap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TripHandlerParams holds dependencies for TripHandler, injected by Fx.
type TripHandlerParams struct {
	fx.In

	TripUC usecase.TripUsecase
	Logger *slog.Logger
}

// TripHandler serves the trip-wide views and route enrichment.
type TripHandler struct {
	tripUC usecase.TripUsecase
	logger *slog.Logger
}

// NewTripHandler is the constructor for TripHandler
func NewTripHandler(params TripHandlerParams) *TripHandler {
	return &TripHandler{
		tripUC: params.TripUC,
		logger: params.Logger,
	}
}

// FetchRoutesRequest selects the pairs to enrich. An empty body enriches every pair.
type FetchRoutesRequest struct {
	FromID string `json:"fromId,omitempty"`
	ToID   string `json:"toId,omitempty"`
}

// mutationResult is the body of every trip mutation response.
type mutationResult struct {
	Item    any                  `json:"item,omitempty"`
	Outcome usecase.WriteOutcome `json:"outcome"`
}

// State returns locations, categories, distances and the busy flag in one consistent copy.
func (h *TripHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.tripUC.Snapshot())
}

// Distances returns the current distance list.
func (h *TripHandler) Distances(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.tripUC.Distances())
}

// FetchRoutes enriches distances with driving routes and reports the batch result.
func (h *TripHandler) FetchRoutes(c echo.Context) error {
	var req FetchRoutesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route query")
	}

	batch := h.tripUC.FetchDrivingRoutes(c.Request().Context(), usecase.RouteQuery{
		FromID: req.FromID,
		ToID:   req.ToID,
	})

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Route batch finished",
		slog.Uint64("seq", batch.Seq),
		slog.String("status", string(batch.Status)),
		slog.Int("enriched", batch.Enriched),
		slog.Int("failed", batch.Failed),
	)

	return response.Success(c, http.StatusOK, batch)
}

// recordMutation hands the change to the logger middleware.
func recordMutation(c echo.Context, op, id string, outcome usecase.WriteOutcome) {
	deliverycontext.RecordMutation(c, deliverycontext.Mutation{
		Op:      op,
		ID:      id,
		Outcome: string(outcome),
	})
}
