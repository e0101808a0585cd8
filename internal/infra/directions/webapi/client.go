// Package webapi resolves driving routes through an OSRM compatible directions API.
// Mapbox Directions speaks the same protocol when an access token is configured.
package webapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tripmap/config"
	"tripmap/internal/domain/entity"
	"tripmap/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const (
	DefaultBaseURL = "https://router.project-osrm.org/route/v1"
	DefaultProfile = "driving"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 8 << 20
)

var ErrNoRoute = errors.New("directions service returned no route")

// Client calls GET {baseURL}/{profile}/{lng},{lat};{lng},{lat}.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	profile     string
	accessToken string
	logger      *slog.Logger
}

type directionsResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Routes  []directionsLeg `json:"routes"`
}

type directionsLeg struct {
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
	Geometry *geojson.Geometry `json:"geometry"`
}

// New builds a client from cfg. A nil httpClient gets one with cfg.Timeout.
func New(cfg *config.DirectionsConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	var settings config.DirectionsConfig
	if cfg != nil {
		settings = *cfg
	}

	if settings.BaseURL == "" {
		settings.BaseURL = DefaultBaseURL
	}
	if settings.Profile == "" {
		settings.Profile = DefaultProfile
	}
	if settings.Timeout <= 0 {
		settings.Timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(settings.BaseURL, "/"),
		profile:     strings.Trim(settings.Profile, "/"),
		accessToken: settings.AccessToken,
		logger:      logger.With(slog.String("component", "directions_client")),
	}
}

// ResolveRoute requests the full-overview driving route from one point to another.
// Distance is converted from meters to kilometers.
func (c *Client) ResolveRoute(ctx context.Context, from, to orb.Point) (*entity.Route, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.routeURL(from, to), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build directions request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read directions response")
	}

	c.logger.DebugContext(ctx, "Directions response",
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	var payload directionsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("directions service responded %d", resp.StatusCode)
		}

		return nil, errors.Wrap(err, "failed to decode directions response")
	}

	if resp.StatusCode != http.StatusOK || !strings.EqualFold(payload.Code, "ok") {
		return nil, errors.Errorf("directions service responded %d (%s: %s)", resp.StatusCode, payload.Code, payload.Message)
	}

	if len(payload.Routes) == 0 {
		return nil, errors.WithStack(ErrNoRoute)
	}

	best := payload.Routes[0]
	if best.Geometry == nil {
		return nil, errors.Wrap(ErrNoRoute, "route has no geometry")
	}

	line, ok := best.Geometry.Coordinates.(orb.LineString)
	if !ok {
		return nil, errors.Wrapf(ErrNoRoute, "unexpected geometry type %s", best.Geometry.Type)
	}

	return &entity.Route{
		DistanceKm:  best.Distance / 1000,
		DurationSec: best.Duration,
		Geometry:    line,
	}, nil
}

func (c *Client) routeURL(from, to orb.Point) string {
	coords := formatCoord(from) + ";" + formatCoord(to)

	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "geojson")
	if c.accessToken != "" {
		query.Set("access_token", c.accessToken)
	}

	return c.baseURL + "/" + c.profile + "/" + coords + "?" + query.Encode()
}

func formatCoord(p orb.Point) string {
	return strconv.FormatFloat(p.Lon(), 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat(), 'f', -1, 64)
}
