// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"
)

// LoginInput carries the shared trip passcode.
type LoginInput struct {
	Passcode string `json:"passcode" validate:"required"`
}

// SessionOutput is returned after a successful login.
type SessionOutput struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	OwnerID     string    `json:"ownerId"`
}

// SessionUsecase defines the interface for the shared passcode session.
type SessionUsecase interface {
	// Login checks the passcode and issues a session token for the trip owner.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// Authenticate validates a session token and returns the owner it grants access to.
	Authenticate(ctx context.Context, token string) (string, error)
}
