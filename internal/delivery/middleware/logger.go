package middleware

import (
	"log/slog"
	"time"

	"tripmap/config"
	deliverycontext "tripmap/internal/delivery/context"
	"tripmap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs trip changes that missed the remote store, and every request in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		mutation, mutated := deliverycontext.GetMutation(c)
		localOnly := mutated && mutation.Outcome == string(usecase.OutcomeLocalOnly)
		if m.debug || localOnly {
			m.logRequest(c, start, err, mutation, mutated, localOnly)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error, mutation deliverycontext.Mutation, mutated, localOnly bool) {
	req := c.Request()
	res := c.Response()

	// request_id and owner_id come with the request-scoped logger
	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if mutated {
		fields = append(fields,
			slog.String("op", mutation.Op),
			slog.String("outcome", mutation.Outcome),
		)
		if mutation.ID != "" {
			fields = append(fields, slog.String("id", mutation.ID))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	msg := "HTTP Request"
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	case localOnly:
		level = slog.LevelWarn
		msg = "Trip change kept locally"
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, msg, fields...)
}
