package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"shopmart/internal/infrastructure/session"
)

// protectedPrefixes are the page paths that require a signed-in user.
var protectedPrefixes = []string{"/profile", "/orders", "/checkout"}

type PageGateMiddleware struct {
	sessions *session.Manager
}

func NewPageGateMiddleware(sessions *session.Manager) *PageGateMiddleware {
	return &PageGateMiddleware{
		sessions: sessions,
	}
}

// Gate redirects unauthenticated access to protected pages to the login
// page, carrying the original path in redirectTo. It is a redirect, not an
// error: API routes use Authenticate instead.
func (m *PageGateMiddleware) Gate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if !isProtectedPage(path) {
			return next(c)
		}

		if token, ok := session.TokenFromRequest(c); ok {
			if _, err := m.sessions.Verify(token); err == nil {
				return next(c)
			}
			session.ClearCookies(c)
		}

		target := "/login?redirectTo=" + url.QueryEscape(path)
		return c.Redirect(http.StatusFound, target)
	}
}

func isProtectedPage(path string) bool {
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
