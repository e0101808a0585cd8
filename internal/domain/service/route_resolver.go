// Package service defines interfaces for collaborators the trip state manager depends on.
package service

import (
	"context"

	"tripmap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RouteResolver converts a coordinate pair into a driving route.
type RouteResolver interface {
	// ResolveRoute returns the driving route from one coordinate to another.
	ResolveRoute(ctx context.Context, from, to orb.Point) (*entity.Route, error)
}
