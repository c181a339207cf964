package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopmart/internal/domain/entity"
	"shopmart/pkg/errors"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, sess, err := m.Issue("u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, sess.TokenID, got.TokenID)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, _, err := other.Issue("u1")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRevokeKillsSession(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, sess, err := m.Issue("u1")
	require.NoError(t, err)

	m.Revoke(sess.TokenID)

	_, err = m.Verify(token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRevokeAllKillsEverySessionForUser(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tokenA, _, err := m.Issue("u1")
	require.NoError(t, err)
	tokenB, _, err := m.Issue("u1")
	require.NoError(t, err)
	tokenOther, _, err := m.Issue("u2")
	require.NoError(t, err)

	m.RevokeAll("u1")

	_, err = m.Verify(tokenA)
	assert.Error(t, err)
	_, err = m.Verify(tokenB)
	assert.Error(t, err)
	_, err = m.Verify(tokenOther)
	assert.NoError(t, err)
}

func TestExpiredSessionIsRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, _, err := m.Issue("u1")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteCookiesSetsBoth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(req)

	user := &entity.User{ID: "u1", Name: "Jane Doe", Email: "jane@example.com"}
	WriteCookies(c, "signed-token", user, time.Hour)

	cookies := rec.Result().Cookies()
	byName := map[string]*http.Cookie{}
	for _, ck := range cookies {
		byName[ck.Name] = ck
	}

	require.Contains(t, byName, SessionCookieName)
	require.Contains(t, byName, UserCookieName)

	assert.Equal(t, "signed-token", byName[SessionCookieName].Value)
	assert.True(t, byName[SessionCookieName].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, byName[SessionCookieName].SameSite)

	assert.False(t, byName[UserCookieName].HttpOnly)
	raw, err := url.QueryUnescape(byName[UserCookieName].Value)
	require.NoError(t, err)
	assert.Contains(t, raw, `"jane@example.com"`)
}

func TestTokenFromRequestPrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")
	c, _ := newTestContext(req)

	token, ok := TokenFromRequest(c)
	require.True(t, ok)
	assert.Equal(t, "from-cookie", token)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer from-header")
	c, _ = newTestContext(req)

	token, ok = TokenFromRequest(c)
	require.True(t, ok)
	assert.Equal(t, "from-header", token)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ = newTestContext(req)

	_, ok = TokenFromRequest(c)
	assert.False(t, ok)
}

func TestCachedUserDiscardsCorruptCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: UserCookieName, Value: "not%zzjson"})
	c, rec := newTestContext(req)

	_, ok := CachedUser(c)
	assert.False(t, ok)

	// The corrupt cookie gets expired on the response.
	expired := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == UserCookieName && ck.MaxAge < 0 {
			expired = true
		}
	}
	assert.True(t, expired)
}

func TestCachedUserRoundTrip(t *testing.T) {
	c, rec := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
	WriteUserCookie(c, &entity.User{ID: "u1", Name: "Jane"}, time.Hour)

	var value string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == UserCookieName {
			value = ck.Value
		}
	}
	require.NotEmpty(t, value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", UserCookieName+"="+strings.ReplaceAll(value, ";", ""))
	c, _ = newTestContext(req)

	user, ok := CachedUser(c)
	require.True(t, ok)
	assert.Equal(t, "u1", user.ID)
}
