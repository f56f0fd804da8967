package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/realtime"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/maheshrc27/brandlab-api/internal/validation"
	"github.com/maheshrc27/brandlab-api/pkg/utils"
	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *transfer.LoginRequest) (*transfer.SessionToken, error)
	GoogleAuthURL(state string) string
	GoogleCallback(ctx context.Context, code string) (*transfer.SessionToken, error)
	Authenticate(ctx context.Context, token string) (*transfer.SessionInfo, error)
	Logout(ctx context.Context, sessionID string) error
}

type AuthConfig struct {
	SecretKey     string
	SessionTTL    time.Duration
	AllowedDomain string
}

type authService struct {
	cfg    AuthConfig
	us     UserService
	u      repository.UserRepository
	sr     repository.SessionRepository
	google GoogleProvider
	events realtime.Publisher
	logger *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	cfg AuthConfig,
	us UserService,
	u repository.UserRepository,
	sr repository.SessionRepository,
	google GoogleProvider,
	events realtime.Publisher,
	logger *zap.Logger) AuthService {
	return &authService{
		cfg:    cfg,
		us:     us,
		u:      u,
		sr:     sr,
		google: google,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

var errInvalidCredentials = apperrors.Unauthorized("invalid email or password")

func (s *authService) Login(ctx context.Context, req *transfer.LoginRequest) (*transfer.SessionToken, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := validation.ValidateLogin(req); err != nil {
		return nil, err
	}

	user, err := s.u.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, errInvalidCredentials
	}

	ok, err := utils.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Info("Rejected sign-in", zap.String("user_id", user.ID))
		return nil, errInvalidCredentials
	}

	return s.startSession(ctx, user)
}

func (s *authService) GoogleAuthURL(state string) string {
	return s.google.AuthCodeURL(state)
}

func (s *authService) GoogleCallback(ctx context.Context, code string) (*transfer.SessionToken, error) {
	if code == "" {
		return nil, apperrors.Validation("code", "code is required")
	}

	info, err := s.google.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn("Google sign-in failed", zap.Error(err))
		return nil, apperrors.Unauthorized("google sign-in failed")
	}
	if !info.VerifiedEmail {
		return nil, apperrors.Unauthorized("google account email is not verified")
	}
	if !s.domainAllowed(info) {
		s.logger.Info("Rejected Google sign-in outside allowed domain", zap.String("email", info.Email))
		return nil, apperrors.Unauthorized("this account is not allowed to sign in")
	}

	user, err := s.us.UpsertGoogleUser(ctx, info)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, user)
}

func (s *authService) domainAllowed(info *transfer.GoogleUserInfo) bool {
	domain := strings.ToLower(s.cfg.AllowedDomain)
	if domain == "" {
		return true
	}
	if strings.ToLower(info.HostedDomain) == domain {
		return true
	}
	return strings.HasSuffix(strings.ToLower(info.Email), "@"+domain)
}

func (s *authService) startSession(ctx context.Context, user *models.StaffUser) (*transfer.SessionToken, error) {
	session := &models.Session{
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.cfg.SessionTTL),
	}
	if err := s.sr.Create(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(s.cfg.SecretKey, user.ID, session.ID, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Session started", zap.String("user_id", user.ID), zap.String("session_id", session.ID))
	return &transfer.SessionToken{Token: token, SessionID: session.ID, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate accepts a token only while the session row behind it is
// still active.
func (s *authService) Authenticate(ctx context.Context, token string) (*transfer.SessionInfo, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("authentication required")
	}

	claims, err := utils.ValidateToken(s.cfg.SecretKey, token)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid or expired session")
	}

	session, err := s.sr.GetByID(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Active(s.now()) || session.UserID != claims.UserID {
		return nil, apperrors.Unauthorized("invalid or expired session")
	}

	user, err := s.us.GetUserInfo(ctx, session.UserID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.Unauthorized("invalid or expired session")
		}
		return nil, err
	}

	return &transfer.SessionInfo{SessionID: session.ID, ExpiresAt: session.ExpiresAt, User: user}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("empty session id")
	}
	if _, err := s.sr.Revoke(ctx, sessionID); err != nil {
		return err
	}

	s.events.Publish(realtime.Event{Table: "sessions", Type: realtime.EventUpdate, ID: sessionID})
	s.logger.Info("Session revoked", zap.String("session_id", sessionID))
	return nil
}
