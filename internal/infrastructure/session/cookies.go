package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"shopmart/internal/domain/entity"
	"shopmart/pkg/logger"
)

const (
	// SessionCookieName carries the signed session token; HTTP-only.
	SessionCookieName = "shop_session"
	// UserCookieName is a client-readable JSON cache of the user record.
	// It is never trusted server-side.
	UserCookieName = "shop_user"
)

// WriteCookies sets both the opaque session cookie and the readable user
// cache cookie.
func WriteCookies(c echo.Context, token string, user *entity.User, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	WriteUserCookie(c, user, ttl)
}

// WriteUserCookie refreshes only the readable cache, used after profile
// mutations so other readers see the updated record.
func WriteUserCookie(c echo.Context, user *entity.User, ttl time.Duration) {
	payload, err := json.Marshal(user)
	if err != nil {
		logger.Warn("Failed to encode user cookie: %v", err)
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     UserCookieName,
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookies expires both cookies.
func ClearCookies(c echo.Context) {
	for _, name := range []string{SessionCookieName, UserCookieName} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// TokenFromRequest pulls the session token from the cookie, falling back to
// a Bearer authorization header for non-browser clients.
func TokenFromRequest(c echo.Context) (string, bool) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	auth := c.Request().Header.Get("Authorization")
	if len(auth) > 7 && auth[:7] == "Bearer " {
		return auth[7:], true
	}

	return "", false
}

// CachedUser decodes the readable user cookie. A corrupt cookie is treated
// as absent and cleared rather than surfaced as an error.
func CachedUser(c echo.Context) (*entity.User, bool) {
	cookie, err := c.Cookie(UserCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	raw, err := url.QueryUnescape(cookie.Value)
	if err == nil {
		var user entity.User
		if err = json.Unmarshal([]byte(raw), &user); err == nil && user.ID != "" {
			return &user, true
		}
	}

	logger.Warn("Discarding corrupt user cookie: %v", err)
	c.SetCookie(&http.Cookie{
		Name:   UserCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return nil, false
}
