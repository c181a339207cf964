package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmart/internal/infrastructure/session"
)

func newGateTestServer(t *testing.T) (*echo.Echo, *session.Manager) {
	t.Helper()

	sessions := session.NewManager("test-secret", time.Hour)
	e := echo.New()
	e.Pre(NewPageGateMiddleware(sessions).Gate)

	ok := func(c echo.Context) error { return c.String(http.StatusOK, "page") }
	e.GET("/", ok)
	e.GET("/login", ok)
	e.GET("/profile", ok)
	e.GET("/orders/:id", ok)
	e.GET("/checkout", ok)

	return e, sessions
}

func TestGateRedirectsAnonymousVisitor(t *testing.T) {
	e, _ := newGateTestServer(t)

	for _, path := range []string{"/profile", "/orders/ord-1", "/checkout"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Location"), "/login?redirectTo=")
	}
}

func TestGateCarriesOriginalPath(t *testing.T) {
	e, _ := newGateTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/ord-1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "/login?redirectTo=%2Forders%2Ford-1", rec.Header().Get("Location"))
}

func TestGateLetsSignedInVisitorThrough(t *testing.T) {
	e, sessions := newGateTestServer(t)

	token, _, err := sessions.Issue("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGateIgnoresPublicPages(t *testing.T) {
	e, _ := newGateTestServer(t)

	for _, path := range []string{"/", "/login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestGateClearsStaleCookieBeforeRedirect(t *testing.T) {
	e, sessions := newGateTestServer(t)

	token, sess, err := sessions.Issue("u1")
	require.NoError(t, err)
	sessions.Revoke(sess.TokenID)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)

	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.SessionCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestIsProtectedPageMatchesPrefixes(t *testing.T) {
	assert.True(t, isProtectedPage("/profile"))
	assert.True(t, isProtectedPage("/orders/ord-1"))
	assert.False(t, isProtectedPage("/profiles"))
	assert.False(t, isProtectedPage("/ordersy"))
	assert.False(t, isProtectedPage("/"))
}
