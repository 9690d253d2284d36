package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/activity"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

var ErrWrongCredentials = errors.New("invalid email or password")

type usersRepo interface {
	Create(ctx context.Context, user NewUser) (int, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (int, error)
}

type activityRecorder interface {
	Record(ctx context.Context, entry activity.Entry)
}

type tokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type Service struct {
	repo     usersRepo
	tokens   *TokenManager
	revoker  tokenRevoker
	activity activityRecorder
	metrics  *metrics.Manager
}

func NewService(
	repo usersRepo,
	tokens *TokenManager,
	revoker tokenRevoker,
	activityRecorder activityRecorder,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		revoker:  revoker,
		activity: activityRecorder,
		metrics:  metricsManager,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest, meta RequestMeta) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.Create(ctx, NewUser{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Age:          req.Age,
		Gender:       req.Gender,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
	})
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.metrics.CounterRegistrations.Inc()
	s.activity.Record(ctx, activity.Entry{
		UserID:      userID,
		Type:        activity.TypeRegistration,
		Description: "User registered",
		IPAddress:   meta.IPAddress,
	})

	return userID, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest, meta RequestMeta) (_ *LoginResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.countLogin("unknown_email")
			return nil, ErrWrongCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Tracef("failed login attempt for user %d", user.ID)
		s.countLogin("wrong_password")
		return nil, ErrWrongCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.countLogin("ok")
	s.activity.Record(ctx, activity.Entry{
		UserID:      user.ID,
		Type:        activity.TypeLogin,
		Description: "User logged in",
		Token: &activity.TokenInfo{
			Fingerprint: activity.Fingerprint(token.Value),
			Type:        TokenType,
			ExpiresAt:   token.ExpiresAt,
		},
		IPAddress: meta.IPAddress,
	})

	resp := &LoginResponse{
		Token:    token.Value,
		Message:  "Login successful",
		Username: user.Username,
	}
	if user.FirstName != nil {
		resp.FirstName = *user.FirstName
	}
	return resp, nil
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest, meta RequestMeta) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.resetpassword")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	passwordHash, err := pkg.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.UpdatePasswordByEmail(ctx, req.Email, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.activity.Record(ctx, activity.Entry{
		UserID:      userID,
		Type:        activity.TypePasswordReset,
		Description: "Password reset",
		IPAddress:   meta.IPAddress,
	})
	return nil
}

// Logout revokes the token the identity was authenticated with.
func (s *Service) Logout(ctx context.Context, identity Identity, meta RequestMeta) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.logout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.revoker.Revoke(ctx, identity.TokenID, identity.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.activity.Record(ctx, activity.Entry{
		UserID:      identity.UserID,
		Type:        activity.TypeLogout,
		Description: "User logged out",
		Token: &activity.TokenInfo{
			Fingerprint: meta.TokenFingerprint,
			Type:        TokenType,
			ExpiresAt:   identity.ExpiresAt,
		},
		IPAddress: meta.IPAddress,
	})
	return nil
}

func (s *Service) countLogin(outcome string) {
	s.metrics.CounterLogins.With(prometheus.Labels{"outcome": outcome}).Inc()
}
