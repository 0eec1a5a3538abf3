package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/taekwondodev/go-role-login/internal/auth/repository"
	customerrors "github.com/taekwondodev/go-role-login/internal/customErrors"
	"github.com/taekwondodev/go-role-login/internal/dto"
)

const healthCheckTimeout = 2 * time.Second

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	HealthCheck(ctx context.Context) (*dto.HealthResponse, error)
}

type AuthServiceImpl struct {
	repo          repository.UserRepository
	lookupTimeout time.Duration
	logger        zerolog.Logger
}

// NewAuthService bounds every store lookup by lookupTimeout.
func NewAuthService(repo repository.UserRepository, lookupTimeout time.Duration, logger zerolog.Logger) AuthService {
	return &AuthServiceImpl{repo: repo, lookupTimeout: lookupTimeout, logger: logger}
}

// Login resolves the role of the user whose stored password equals the
// supplied one. Unknown users and wrong passwords look the same to callers.
func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, customerrors.ErrUserNotFound) {
			return nil, customerrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("username", req.Username).Msg("user lookup failed")
		return nil, customerrors.ErrInternalServer
	}

	if user.Password != req.Password {
		return nil, customerrors.ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Role:    user.Role,
	}, nil
}

func (s *AuthServiceImpl) HealthCheck(ctx context.Context) (*dto.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("store ping failed")
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, customerrors.ErrDbTimeout
		}
		return nil, customerrors.ErrDbUnreachable
	}

	return &dto.HealthResponse{
		Status:   "OK",
		Database: "Connected",
	}, nil
}
