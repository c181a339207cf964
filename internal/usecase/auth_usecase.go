package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopmart/internal/domain/entity"
	"shopmart/internal/domain/repository"
	"shopmart/internal/infrastructure/event"
	"shopmart/internal/infrastructure/session"
	"shopmart/pkg/errors"
	"shopmart/pkg/logger"
)

type AuthUseCase struct {
	userRepo  repository.UserRepository
	sessions  *session.Manager
	google    GoogleAuthClient
	bus       *event.Bus
	mockDelay time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessions *session.Manager,
	google GoogleAuthClient,
	bus *event.Bus,
	mockDelay time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		sessions:  sessions,
		google:    google,
		bus:       bus,
		mockDelay: mockDelay,
	}
}

type AuthResult struct {
	User    *entity.User
	Token   string
	Session entity.Session
}

// OAuthState rides through the provider round-trip in the state parameter.
type OAuthState struct {
	Nonce      string `json:"nonce"`
	RedirectTo string `json:"redirect_to,omitempty"`
	Popup      bool   `json:"popup,omitempty"`
}

// Login is a mock identity check: it waits a simulated round-trip and then
// succeeds for any credentials, manufacturing a customer record from the
// email on first sight. The password is deliberately not verified.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if err := waitFor(ctx, uc.mockDelay); err != nil {
		return nil, errors.Internal("Login cancelled", err)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		user = &entity.User{
			Name:     nameFromEmail(email),
			Email:    email,
			Role:     entity.RoleCustomer,
			Provider: entity.ProviderPassword,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	}

	return uc.startSession(user)
}

// Register behaves like Login but takes an explicit display name and
// rejects emails that are already taken.
func (uc *AuthUseCase) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	if err := waitFor(ctx, uc.mockDelay); err != nil {
		return nil, errors.Internal("Registration cancelled", err)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.Conflict("Email already in use")
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Role:     entity.RoleCustomer,
		Provider: entity.ProviderPassword,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.startSession(user)
}

// GoogleAuthURL builds the consent URL; redirectTo and the popup flag come
// back in the state parameter.
func (uc *AuthUseCase) GoogleAuthURL(redirectTo string, popup bool) (string, error) {
	state, err := encodeState(OAuthState{
		Nonce:      uuid.New().String(),
		RedirectTo: redirectTo,
		Popup:      popup,
	})
	if err != nil {
		return "", errors.Internal("Failed to encode OAuth state", err)
	}
	return uc.google.AuthCodeURL(state), nil
}

// CompleteGoogleLogin is the single convergence point for both OAuth
// completion paths (full-page redirect and popup): exchange the code, then
// upsert the user and start a session.
func (uc *AuthUseCase) CompleteGoogleLogin(ctx context.Context, code string) (*AuthResult, error) {
	profile, err := uc.google.FetchProfile(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}

		name := profile.Name
		if name == "" {
			name = nameFromEmail(profile.Email)
		}
		user = &entity.User{
			Name:     name,
			Email:    profile.Email,
			Role:     entity.RoleCustomer,
			Avatar:   profile.Picture,
			Provider: entity.ProviderGoogle,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if user.Avatar == "" && profile.Picture != "" {
		user.Avatar = profile.Picture
		if err := uc.userRepo.Update(ctx, user); err != nil {
			logger.Warn("Failed to refresh avatar for %s: %v", user.ID, err)
		}
	}

	return uc.startSession(user)
}

// CurrentUser resolves the session token to the full user record.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	sess, err := uc.sessions.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, errors.Unauthorized("Session user no longer exists", err)
	}
	return user, nil
}

// Logout revokes the session and broadcasts the logout signal; the cart
// store and any open tabs react to the broadcast. An already-invalid token
// is not an error, the caller's cookies get cleared either way.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) {
	sess, err := uc.sessions.Verify(token)
	if err != nil {
		return
	}

	uc.sessions.Revoke(sess.TokenID)
	uc.bus.PublishLogout(event.LogoutEvent{UserID: sess.UserID})
}

func (uc *AuthUseCase) startSession(user *entity.User) (*AuthResult, error) {
	token, sess, err := uc.sessions.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:    user,
		Token:   token,
		Session: sess,
	}, nil
}

// nameFromEmail turns the address's local part into a display name:
// "jane.doe@x.com" becomes "Jane Doe".
func nameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}

	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	if len(words) == 0 {
		return local
	}
	return strings.Join(words, " ")
}

func encodeState(state OAuthState) (string, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeState parses the state parameter returned by the provider.
func DecodeState(raw string) (OAuthState, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return OAuthState{}, errors.BadRequest("Malformed OAuth state", err)
	}

	var state OAuthState
	if err := json.Unmarshal(decoded, &state); err != nil {
		return OAuthState{}, errors.BadRequest("Malformed OAuth state", err)
	}
	return state, nil
}
