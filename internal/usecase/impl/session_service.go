package impl

import (
	"context"
	"log/slog"

	"tripmap/config"
	deliverycontext "tripmap/internal/delivery/context"
	"tripmap/internal/domain/entity"
	domainerrors "tripmap/internal/domain/errors"
	"tripmap/internal/domain/service"
	"tripmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	hasher       service.PasswordHasher
	tokenService service.TokenService
	passcodeHash string
	ownerID      string
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	passcodeHash := ""
	if params.Config != nil && params.Config.Auth != nil {
		passcodeHash = params.Config.Auth.PasscodeHash
	}

	return &sessionService{
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		passcodeHash: passcodeHash,
		ownerID:      params.Config.OwnerID(entity.DefaultOwnerID),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks the shared passcode and issues a session token.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	if srv.passcodeHash == "" {
		srv.log(ctx).Error("Login attempted but no passcode is configured")

		return nil, domainerrors.ErrSessionUnavailable
	}

	if input == nil || !srv.hasher.Check(input.Passcode, srv.passcodeHash) {
		srv.log(ctx).Warn("Rejected login with invalid passcode")

		return nil, domainerrors.ErrInvalidPasscode
	}

	token, expiresAt, err := srv.tokenService.GenerateToken(srv.ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Session started", slog.String("owner_id", srv.ownerID))

	return &usecase.SessionOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
		OwnerID:     srv.ownerID,
	}, nil
}

// Authenticate validates a session token.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Session token rejected", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	if claims.OwnerID != srv.ownerID {
		return "", errors.Wrap(domainerrors.ErrTokenInvalid, "token issued for another trip")
	}

	return claims.OwnerID, nil
}
