package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/pkg/auth"
	"github.com/yigit/intlportal/internal/seed"
)

// AuthDelays are the simulated round trips of the two login paths.
type AuthDelays struct {
	Form time.Duration
	Demo time.Duration
}

// AuthService opens and closes demo sessions. No credential is ever
// verified.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	DemoLogin(ctx context.Context, role models.Role) (*dto.TokenResponse, error)
	Logout(sessionID string) error
}

type authServiceImpl struct {
	sessions   *session.Manager
	jwtService *auth.JWTService
	delays     AuthDelays
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(sessions *session.Manager, jwtService *auth.JWTService, delays AuthDelays, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		sessions:   sessions,
		jwtService: jwtService,
		delays:     delays,
		logger:     logger,
	}
}

// wait sleeps for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", apperrors.ErrLoginInterrupted, ctx.Err())
	}
}

// Login grants the student identity whatever the form contains.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	s.logger.Debug().Str("email", req.Email).Msg("Form login, granting the student identity")
	if err := wait(ctx, s.delays.Form); err != nil {
		return nil, err
	}
	user, _ := seed.DemoUser(models.RoleStudent)
	return s.open(ctx, user)
}

// DemoLogin grants the demo identity of role.
func (s *authServiceImpl) DemoLogin(ctx context.Context, role models.Role) (*dto.TokenResponse, error) {
	user, ok := seed.DemoUser(role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownDemoRole, role)
	}
	if err := wait(ctx, s.delays.Demo); err != nil {
		return nil, err
	}
	return s.open(ctx, user)
}

func (s *authServiceImpl) open(ctx context.Context, user models.User) (*dto.TokenResponse, error) {
	info, err := s.sessions.Login(ctx, user)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwtService.GenerateSessionToken(info.ID, user)
	if err != nil {
		// Without a token nobody can reach the session.
		_ = s.sessions.Logout(info.ID)
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Session:     info,
	}, nil
}

func (s *authServiceImpl) Logout(sessionID string) error {
	return s.sessions.Logout(sessionID)
}
