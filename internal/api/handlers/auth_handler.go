package handlers

import (
	"bufio"
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/brandlab-api/configs"
	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/realtime"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/maheshrc27/brandlab-api/pkg/utils"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	s         service.AuthService
	cfg       config.Config
	hub       *realtime.Hub
	logger    *zap.Logger
	heartbeat time.Duration
}

func NewAuthHandler(cfg config.Config, service service.AuthService, hub *realtime.Hub, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{s: service, cfg: cfg, hub: hub, logger: logger, heartbeat: defaultHeartbeat}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token *transfer.SessionToken) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token.Token,
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  token.ExpiresAt,
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		HTTPOnly: true,
		Path:     "/",
		Expires:  fasthttp.CookieExpireDelete,
	})
}

func (h *AuthHandler) loginURL(message string) string {
	u := strings.TrimRight(h.cfg.FrontendURL, "/") + h.cfg.LoginPath
	if message == "" {
		return u
	}
	return u + "?error=" + url.QueryEscape(message)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req transfer.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	token, err := h.s.Login(c.Context(), &req)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token)
	return c.JSON(fiber.Map{
		"token":      token.Token,
		"expires_at": token.ExpiresAt,
	})
}

func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	state, err := utils.GenerateRandomKey(24)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookieName,
		Value:    state,
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/auth",
		Expires:  time.Now().Add(10 * time.Minute),
	})
	return c.Redirect(h.s.GoogleAuthURL(state), fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	state := c.Cookies(stateCookieName)
	h.clearCookie(c, stateCookieName)

	if state == "" || c.Query("state") != state {
		h.logger.Info("Rejected Google callback with mismatched state")
		return c.Redirect(h.loginURL("sign-in expired, please try again"), fiber.StatusTemporaryRedirect)
	}

	token, err := h.s.GoogleCallback(c.Context(), c.Query("code"))
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			h.logger.Error("Google sign-in failed", zap.Error(err))
		}
		return c.Redirect(h.loginURL(apperrors.PublicMessage(err)), fiber.StatusTemporaryRedirect)
	}

	h.setSessionCookie(c, token)
	return c.Redirect(h.cfg.FrontendURL, fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session := GetSession(c)
	if session == nil {
		return apperrors.Unauthorized("authentication required")
	}

	if err := h.s.Logout(c.Context(), session.SessionID); err != nil {
		return err
	}

	h.clearCookie(c, h.cfg.CookieName)
	return c.JSON(fiber.Map{"message": "Signed out"})
}

func (h *AuthHandler) Session(c *fiber.Ctx) error {
	session := GetSession(c)
	if session == nil {
		return apperrors.Unauthorized("authentication required")
	}
	return c.JSON(session)
}

// SessionEvents keeps an SSE stream open and sends signed_out once the
// session is revoked or expires.
func (h *AuthHandler) SessionEvents(c *fiber.Ctx) error {
	session := GetSession(c)
	if session == nil {
		return apperrors.Unauthorized("authentication required")
	}

	token := getToken(c)
	sessionID := session.SessionID
	expiresAt := session.ExpiresAt
	sub := h.hub.Subscribe("sessions")
	heartbeat := h.heartbeat
	logger := h.logger

	signedOut := func(w *bufio.Writer) (bool, error) {
		return true, realtime.WriteEvent(w, "signed_out", fiber.Map{"session_id": sessionID})
	}

	setStreamHeaders(c)
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(sub)

		err := stream(w, sub, heartbeat,
			func(w *bufio.Writer, ev realtime.Event) (bool, error) {
				if ev.ID != sessionID {
					return false, nil
				}
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				_, err := h.s.Authenticate(ctx, token)
				if apperrors.KindOf(err) == apperrors.KindUnauthorized {
					return signedOut(w)
				}
				if err != nil {
					logger.Warn("Session recheck failed", zap.String("session_id", sessionID), zap.Error(err))
				}
				return false, nil
			},
			func(w *bufio.Writer) (bool, error) {
				if !time.Now().Before(expiresAt) {
					return signedOut(w)
				}
				return false, realtime.WriteHeartbeat(w)
			},
		)
		logger.Debug("Session stream closed", zap.String("session_id", sessionID), zap.Error(err))
	}))
	return nil
}
