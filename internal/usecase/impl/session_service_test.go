package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tripmap/config"
	"tripmap/internal/domain/entity"
	domainerrors "tripmap/internal/domain/errors"
	"tripmap/internal/domain/service"
	mockService "tripmap/internal/mocks/service"
	"tripmap/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPasscodeHash = "$2a$10$hash"

func newSessionFixture(t *testing.T, cfg *config.Config) (usecase.SessionUsecase, *mockService.MockPasswordHasher, *mockService.MockTokenService) {
	t.Helper()

	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	svc := NewSessionService(SessionServiceParams{
		Hasher:       hasher,
		TokenService: tokens,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, hasher, tokens
}

func sessionConfig(ownerID string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{PasscodeHash: testPasscodeHash},
		Trip: &config.TripConfig{OwnerID: ownerID},
	}
}

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid passcode issues a token for the trip owner", func(t *testing.T) {
		svc, hasher, tokens := newSessionFixture(t, sessionConfig("family-trip"))
		expiresAt := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
		hasher.EXPECT().Check("open-sesame", testPasscodeHash).Return(true)
		tokens.EXPECT().GenerateToken("family-trip").Return("signed", expiresAt, nil)

		out, err := svc.Login(ctx, &usecase.LoginInput{Passcode: "open-sesame"})

		require.NoError(t, err)
		assert.Equal(t, &usecase.SessionOutput{
			AccessToken: "signed",
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
			OwnerID:     "family-trip",
		}, out)
	})

	t.Run("owner defaults when not configured", func(t *testing.T) {
		svc, hasher, tokens := newSessionFixture(t, sessionConfig(""))
		hasher.EXPECT().Check("open-sesame", testPasscodeHash).Return(true)
		tokens.EXPECT().GenerateToken(entity.DefaultOwnerID).Return("signed", time.Time{}, nil)

		out, err := svc.Login(ctx, &usecase.LoginInput{Passcode: "open-sesame"})

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultOwnerID, out.OwnerID)
	})

	t.Run("wrong passcode", func(t *testing.T) {
		svc, hasher, _ := newSessionFixture(t, sessionConfig("family-trip"))
		hasher.EXPECT().Check("guess", testPasscodeHash).Return(false)

		out, err := svc.Login(ctx, &usecase.LoginInput{Passcode: "guess"})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPasscode)
	})

	t.Run("nil input", func(t *testing.T) {
		svc, _, _ := newSessionFixture(t, sessionConfig("family-trip"))

		_, err := svc.Login(ctx, nil)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPasscode)
	})

	t.Run("no passcode configured", func(t *testing.T) {
		svc, _, _ := newSessionFixture(t, &config.Config{})

		_, err := svc.Login(ctx, &usecase.LoginInput{Passcode: "anything"})

		assert.ErrorIs(t, err, domainerrors.ErrSessionUnavailable)
	})

	t.Run("token signing fails", func(t *testing.T) {
		svc, hasher, tokens := newSessionFixture(t, sessionConfig("family-trip"))
		hasher.EXPECT().Check("open-sesame", testPasscodeHash).Return(true)
		tokens.EXPECT().GenerateToken("family-trip").Return("", time.Time{}, errors.New("no key"))

		_, err := svc.Login(ctx, &usecase.LoginInput{Passcode: "open-sesame"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate session token")
	})
}

func TestSessionService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		svc, _, tokens := newSessionFixture(t, sessionConfig("family-trip"))
		tokens.EXPECT().ValidateToken("signed").Return(&service.Claims{OwnerID: "family-trip"}, nil)

		ownerID, err := svc.Authenticate(ctx, "signed")

		require.NoError(t, err)
		assert.Equal(t, "family-trip", ownerID)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, _, tokens := newSessionFixture(t, sessionConfig("family-trip"))
		tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		_, err := svc.Authenticate(ctx, "expired")

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("token for another trip", func(t *testing.T) {
		svc, _, tokens := newSessionFixture(t, sessionConfig("family-trip"))
		tokens.EXPECT().ValidateToken("foreign").Return(&service.Claims{OwnerID: "other-trip"}, nil)

		_, err := svc.Authenticate(ctx, "foreign")

		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})
}
