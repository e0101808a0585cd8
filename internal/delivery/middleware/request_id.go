package middleware

import (
	"log/slog"

	deliverycontext "tripmap/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns every request an id and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id from the client and otherwise generates one.
// The id is echoed back so clients can quote it when a change was only kept locally.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		supplied := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		requestID := deliverycontext.NewRequestID(supplied)
		if supplied != "" && supplied != requestID {
			m.logger.Debug("Replaced malformed request id", slog.String("request_id", requestID))
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		deliverycontext.BindRequest(c, requestID, m.logger)

		return next(c)
	}
}
