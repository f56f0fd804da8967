package transfer

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maheshrc27/brandlab-api/internal/models"
)

type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionToken is what a successful sign-in hands back to the handler so it
// can set the session cookie.
type SessionToken struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

type SessionInfo struct {
	SessionID string            `json:"session_id"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      *models.StaffUser `json:"user"`
}

type GoogleUserInfo struct {
	ID            string
	Email         string
	VerifiedEmail bool
	Name          string
	Picture       string
	HostedDomain  string
}
