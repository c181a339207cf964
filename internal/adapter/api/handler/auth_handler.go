package handler

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"shopmart/internal/domain/entity"
	"shopmart/internal/infrastructure/session"
	"shopmart/internal/usecase"
	"shopmart/pkg/errors"
	"shopmart/pkg/logger"
	"shopmart/pkg/response"
)

type AuthHandler struct {
	authUseCase   *usecase.AuthUseCase
	sessions      *session.Manager
	allowedOrigin string
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, sessions *session.Manager, allowedOrigin string) *AuthHandler {
	return &AuthHandler{
		authUseCase:   authUseCase,
		sessions:      sessions,
		allowedOrigin: allowedOrigin,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type authResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	session.WriteCookies(c, result.Token, result.User, h.sessions.TTL())
	return response.Success(c, authResponse{User: result.User, Token: result.Token})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	session.WriteCookies(c, result.Token, result.User, h.sessions.TTL())
	return response.Created(c, authResponse{User: result.User, Token: result.Token})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if token, ok := session.TokenFromRequest(c); ok {
		h.authUseCase.Logout(c.Request().Context(), token)
	}

	session.ClearCookies(c)
	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}

// Me resolves the current session. The readable user cookie is refreshed on
// every hit so stale client caches reconcile on the next read.
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := session.TokenFromRequest(c)
	if !ok {
		return response.Error(c, errors.Unauthorized("Not signed in", nil))
	}

	user, err := h.authUseCase.CurrentUser(c.Request().Context(), token)
	if err != nil {
		session.ClearCookies(c)
		return response.Error(c, err)
	}

	session.WriteUserCookie(c, user, h.sessions.TTL())
	return response.Success(c, user)
}

// GoogleLogin starts the full-page authorization-code flow.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	return h.redirectToConsent(c, false)
}

// GooglePopup starts the same flow for a popup window; the callback then
// reports back to the opener via postMessage instead of redirecting.
func (h *AuthHandler) GooglePopup(c echo.Context) error {
	return h.redirectToConsent(c, true)
}

func (h *AuthHandler) redirectToConsent(c echo.Context, popup bool) error {
	authURL, err := h.authUseCase.GoogleAuthURL(c.QueryParam("redirectTo"), popup)
	if err != nil {
		return response.Error(c, err)
	}
	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallback handles the provider redirect for both flow variants.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state, err := usecase.DecodeState(c.QueryParam("state"))
	if err != nil {
		return h.finishOAuth(c, state, nil, errors.BadRequest("Malformed OAuth state", err))
	}

	if providerErr := c.QueryParam("error"); providerErr != "" {
		return h.finishOAuth(c, state, nil, errors.Unauthorized("Provider refused: "+providerErr, nil))
	}

	result, err := h.authUseCase.CompleteGoogleLogin(c.Request().Context(), c.QueryParam("code"))
	return h.finishOAuth(c, state, result, err)
}

type credentialRequest struct {
	Code string `json:"code" validate:"required"`
}

type oauthResponse struct {
	Success    bool         `json:"success"`
	User       *entity.User `json:"user,omitempty"`
	RedirectTo string       `json:"redirectTo,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// GoogleExchange is the script-initiated completion path: the provider
// hands the page a credential and the page posts it here for the
// server-side exchange. Converges on the same use case routine.
func (h *AuthHandler) GoogleExchange(c echo.Context) error {
	var req credentialRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.CompleteGoogleLogin(c.Request().Context(), req.Code)
	if err != nil {
		logger.Warn("Google credential exchange failed: %v", err)
		return c.JSON(http.StatusUnauthorized, oauthResponse{Success: false, Error: oauthErrorMessage(err)})
	}

	session.WriteCookies(c, result.Token, result.User, h.sessions.TTL())
	return c.JSON(http.StatusOK, oauthResponse{Success: true, User: result.User, RedirectTo: "/"})
}

func (h *AuthHandler) finishOAuth(c echo.Context, state usecase.OAuthState, result *usecase.AuthResult, err error) error {
	if err == nil {
		session.WriteCookies(c, result.Token, result.User, h.sessions.TTL())
	} else {
		logger.Warn("Google login failed: %v", err)
	}

	if state.Popup {
		return h.renderPopupBridge(c, result, err)
	}

	if err != nil {
		return c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape(oauthErrorMessage(err)))
	}

	target := state.RedirectTo
	if target == "" || target[0] != '/' {
		target = "/"
	}
	return c.Redirect(http.StatusFound, target)
}

// renderPopupBridge serves a page that reports the outcome to the opener
// window and closes itself. The message is only delivered to the configured
// origin.
func (h *AuthHandler) renderPopupBridge(c echo.Context, result *usecase.AuthResult, err error) error {
	payload := oauthResponse{Success: err == nil}
	if err != nil {
		payload.Error = oauthErrorMessage(err)
	} else {
		payload.User = result.User
	}

	message, encErr := json.Marshal(payload)
	if encErr != nil {
		return response.Error(c, errors.Internal("Failed to encode OAuth result", encErr))
	}
	origin, _ := json.Marshal(h.allowedOrigin)

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Signing in…</title></head>
<body>
<script>
  if (window.opener) {
    window.opener.postMessage(%s, %s);
  }
  window.close();
</script>
</body>
</html>`, message, origin)

	return c.HTML(http.StatusOK, page)
}

func oauthErrorMessage(err error) string {
	var appErr *errors.AppError
	if goerrors.As(err, &appErr) {
		return appErr.Message
	}
	return "Google sign-in failed"
}
