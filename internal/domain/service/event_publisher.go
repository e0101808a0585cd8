package service

import (
	"context"
)

// Trip change kinds.
const (
	ChangeKindLocation = "location"
	ChangeKindCategory = "category"
)

// Trip change operations.
const (
	ChangeOpCreated = "created"
	ChangeOpUpdated = "updated"
	ChangeOpDeleted = "deleted"
	ChangeOpCleared = "cleared"
)

// TripChangedEvent tells other clients of the same trip that they should refresh.
type TripChangedEvent struct {
	RequestID string `json:"request_id,omitempty"`
	OwnerID   string `json:"owner_id"`
	Kind      string `json:"kind"`
	Op        string `json:"op"`
	EntityID  string `json:"entity_id,omitempty"`
	Outcome   string `json:"outcome"`
}

// EventPublisher publishes trip change events to a message queue.
type EventPublisher interface {
	// PublishTripChanged publishes a change event.
	PublishTripChanged(ctx context.Context, event *TripChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
