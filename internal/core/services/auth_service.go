package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"lps-admin/internal/adapters/persistence/models"
	"lps-admin/internal/adapters/persistence/repositories"
	"lps-admin/internal/config"
	"lps-admin/internal/core/domain"
	"lps-admin/internal/pkg/jwt"
	"lps-admin/internal/pkg/logger"
	"lps-admin/internal/pkg/sealer"
)

// HomePath is where a successful login sends the browser
const HomePath = "/home"

// AuthService owns the authenticated session: upstream login, the sealed
// token at rest, and revocation on logout, on any upstream 401 and on expiry.
type AuthService struct {
	api    AuthAPI
	repo   repositories.SessionRepository
	sealer *sealer.Sealer
	cfg    *config.Config
	now    func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(api AuthAPI, repo repositories.SessionRepository, s *sealer.Sealer, cfg *config.Config) *AuthService {
	return &AuthService{
		api:    api,
		repo:   repo,
		sealer: s,
		cfg:    cfg,
		now:    time.Now,
	}
}

// LoginResponse is returned to the browser after login
type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	User      domain.SessionUser `json:"user"`
	Redirect  string             `json:"redirect"`
}

// Login authenticates against the LPS backend and opens a session.
// Nothing is stored unless the backend accepted the credentials.
func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (*LoginResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 1. Authenticate upstream
	res, err := s.api.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	// 2. Seal the bearer token
	sealed, err := s.sealer.Seal(res.Token)
	if err != nil {
		return nil, fmt.Errorf("seal token: %w", err)
	}

	// 3. Store the session
	now := s.now()
	user := domain.NewSessionUser(res.User)
	row := &models.Session{
		ID:          uuid.New().String(),
		SealedToken: sealed,
		UserID:      user.ID.String(),
		Email:       user.Email,
		Username:    user.Username,
		Name:        user.Name,
		Role:        string(user.Role),
		ExpiresAt:   now.Add(s.cfg.Session.TTL),
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// 4. Sign the browser token
	token, err := jwt.GenerateSessionToken(row.ID, row.UserID, row.Email, row.Role, s.cfg.Session.Secret, row.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"session": row.ID,
		"user":    user.Email,
		"token":   sealer.HashToken(res.Token),
	}).Info("✅ User logged in")

	return &LoginResponse{
		Token:     token,
		ExpiresAt: row.ExpiresAt,
		User:      user,
		Redirect:  HomePath,
	}, nil
}

// Resolve turns a browser token into the live session it names
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims, err := jwt.ValidateSessionToken(token, s.cfg.Session.Secret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrSessionExpired
		}
		return nil, domain.ErrUnauthorized
	}

	row, err := s.repo.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if row.IsRevoked() {
		return nil, domain.ErrSessionRevoked
	}
	if row.IsExpired(s.now()) {
		return nil, domain.ErrSessionExpired
	}

	plain, err := s.sealer.Open(row.SealedToken)
	if err != nil {
		logger.Warnf("⚠️ Session %s has an unreadable token, revoking", row.ID)
		_ = s.repo.Revoke(ctx, row.ID)
		return nil, domain.ErrSessionRevoked
	}

	return &domain.Session{
		ID:    row.ID,
		Token: plain,
		User: domain.SessionUser{
			ID:       domain.ID(row.UserID),
			Email:    row.Email,
			Username: row.Username,
			Name:     row.Name,
			Role:     domain.Role(row.Role),
		},
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

// Logout revokes the session
func (s *AuthService) Logout(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.repo.Revoke(ctx, sess.ID); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"session": sess.ID}).Info("✅ User logged out")
	return nil
}

// InvalidateOnUnauthorized is installed as the LPS client's 401 policy.
// The stored session is revoked so every later gated request is refused.
// It may run from several concurrent fetches of one request, so sess is
// only read here; the store is the single source of revocation.
func (s *AuthService) InvalidateOnUnauthorized(ctx context.Context, sess *domain.Session) {
	if sess == nil || sess.ID == "" {
		return
	}
	if err := s.repo.Revoke(context.WithoutCancel(ctx), sess.ID); err != nil {
		logger.Errorf("❌ Failed to revoke session %s after 401: %v", sess.ID, err)
	}
	logger.WithFields(logrus.Fields{"session": sess.ID}).Warn("⚠️ Upstream rejected token, session revoked")
}

// PurgeExpired deletes expired and revoked sessions
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx)
}
