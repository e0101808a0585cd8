// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tripmap/config"
	"tripmap/internal/domain/service"
)

const defaultTokenTTL = 12 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Without a configured secret, tokens are signed with a per-process random key and do
// not survive a restart.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	var secret string
	ttl := defaultTokenTTL
	if cfg.Auth != nil {
		secret = cfg.Auth.SecretKey
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
	}

	if secret == "" {
		logger.Warn("No session secret configured, using an ephemeral signing key")
		secret = uuid.NewString() + uuid.NewString()
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: cfg.Env.ServiceName,
		now:    time.Now,
	}
}

// GenerateToken creates a signed HS256 token for the trip owner.
func (s *jwtService) GenerateToken(ownerID string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &service.Claims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   ownerID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// ValidateToken checks the signature and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid || claims.OwnerID == "" {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}
