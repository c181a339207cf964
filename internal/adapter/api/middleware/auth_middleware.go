package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmart/internal/infrastructure/session"
)

type AuthMiddleware struct {
	sessions *session.Manager
}

func NewAuthMiddleware(sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Authenticate gates API routes: a missing or invalid session yields 401
// JSON. Invalid cookies are cleared so the client stops resending them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := session.TokenFromRequest(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		sess, err := m.sessions.Verify(token)
		if err != nil {
			session.ClearCookies(c)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session")
		}

		c.Set("uid", sess.UserID)
		c.Set("sessionTokenID", sess.TokenID)
		return next(c)
	}
}
