package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/brandlab-api/configs"
	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/valyala/fasthttp"
)

const (
	LocalUserID  = "user_id"
	LocalSession = "session"
	LocalToken   = "token"
)

type AuthMiddleware struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config, service service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{s: service, cfg: cfg}
}

// TokenFromRequest prefers the session cookie and falls back to a bearer
// token for non-browser clients.
func TokenFromRequest(c *fiber.Ctx, cookieName string) (token string, fromCookie bool) {
	if token := c.Cookies(cookieName); token != "" {
		return token, true
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return strings.TrimSpace(auth[7:]), false
	}
	return "", false
}

func wantsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}

func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, fromCookie := TokenFromRequest(c, m.cfg.CookieName)

		info, err := m.s.Authenticate(c.Context(), token)
		if err != nil {
			if apperrors.KindOf(err) != apperrors.KindUnauthorized {
				return err
			}

			if fromCookie {
				c.Cookie(&fiber.Cookie{
					Name:    m.cfg.CookieName,
					Value:   "",
					Path:    "/",
					Expires: fasthttp.CookieExpireDelete,
				})
			}

			if wantsHTML(c) {
				return c.Redirect(strings.TrimRight(m.cfg.FrontendURL, "/")+m.cfg.LoginPath, fiber.StatusFound)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": apperrors.PublicMessage(err),
			})
		}

		c.Locals(LocalUserID, info.User.ID)
		c.Locals(LocalSession, info)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}
