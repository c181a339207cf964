package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "shopmart/internal/adapter/repository"
	"shopmart/internal/domain/entity"
	"shopmart/internal/infrastructure/event"
	"shopmart/internal/infrastructure/google"
	"shopmart/internal/infrastructure/session"
	"shopmart/pkg/errors"
)

type fakeGoogle struct {
	profile *google.Profile
	err     error
}

func (f *fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example.com/consent?state=" + state
}

func (f *fakeGoogle) FetchProfile(ctx context.Context, code string) (*google.Profile, error) {
	return f.profile, f.err
}

func newAuthFixture(t *testing.T, g GoogleAuthClient) (*AuthUseCase, *event.Bus) {
	t.Helper()

	sessions := session.NewManager("test-secret", time.Hour)
	bus := event.NewBus()
	uc := NewAuthUseCase(adapter.NewMemoryUserRepository(), sessions, g, bus, 0)
	return uc, bus
}

func TestLoginManufacturesCustomer(t *testing.T) {
	uc, _ := newAuthFixture(t, &fakeGoogle{})

	result, err := uc.Login(context.Background(), "jane.doe@example.com", "whatever")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.User.Name)
	assert.Equal(t, entity.RoleCustomer, result.User.Role)
	assert.NotEmpty(t, result.Token)

	// Logging in again finds the same record.
	again, err := uc.Login(context.Background(), "jane.doe@example.com", "other")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	uc, _ := newAuthFixture(t, &fakeGoogle{})
	ctx := context.Background()

	_, err := uc.Register(ctx, "Jane", "jane@example.com", "password1")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "Imposter", "jane@example.com", "password2")
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestLoginCancelledContext(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	uc := NewAuthUseCase(adapter.NewMemoryUserRepository(), sessions, &fakeGoogle{}, event.NewBus(), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Login(ctx, "jane@example.com", "pw")
	assert.Error(t, err)
}

func TestCompleteGoogleLoginUpsertsUser(t *testing.T) {
	g := &fakeGoogle{profile: &google.Profile{
		Subject: "g-123",
		Email:   "sam@example.com",
		Name:    "Sam Example",
		Picture: "https://lh3.example.com/sam.png",
	}}
	uc, _ := newAuthFixture(t, g)
	ctx := context.Background()

	result, err := uc.CompleteGoogleLogin(ctx, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "Sam Example", result.User.Name)
	assert.Equal(t, entity.ProviderGoogle, result.User.Provider)
	assert.Equal(t, "https://lh3.example.com/sam.png", result.User.Avatar)

	// The second completion reuses the record.
	again, err := uc.CompleteGoogleLogin(ctx, "auth-code")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
}

func TestCompleteGoogleLoginSurfacesProviderError(t *testing.T) {
	g := &fakeGoogle{err: errors.Unauthorized("Authorization code exchange failed", nil)}
	uc, _ := newAuthFixture(t, g)

	_, err := uc.CompleteGoogleLogin(context.Background(), "bad-code")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLogoutRevokesSessionAndBroadcasts(t *testing.T) {
	uc, bus := newAuthFixture(t, &fakeGoogle{})
	ctx := context.Background()

	var loggedOut []string
	bus.SubscribeLogout(func(e event.LogoutEvent) {
		loggedOut = append(loggedOut, e.UserID)
	})

	result, err := uc.Login(ctx, "jane@example.com", "pw")
	require.NoError(t, err)

	user, err := uc.CurrentUser(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)

	uc.Logout(ctx, result.Token)

	_, err = uc.CurrentUser(ctx, result.Token)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Equal(t, []string{result.User.ID}, loggedOut)

	// A second logout with the dead token is a no-op.
	uc.Logout(ctx, result.Token)
	assert.Len(t, loggedOut, 1)
}

func TestOAuthStateRoundTrip(t *testing.T) {
	uc, _ := newAuthFixture(t, &fakeGoogle{})

	url, err := uc.GoogleAuthURL("/checkout", true)
	require.NoError(t, err)
	assert.Contains(t, url, "state=")

	encoded, err := encodeState(OAuthState{Nonce: "n", RedirectTo: "/checkout", Popup: true})
	require.NoError(t, err)

	decoded, err := DecodeState(encoded)
	require.NoError(t, err)
	assert.Equal(t, "/checkout", decoded.RedirectTo)
	assert.True(t, decoded.Popup)

	_, err = DecodeState("%%%not-base64%%%")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
