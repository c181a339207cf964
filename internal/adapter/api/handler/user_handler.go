package handler

import (
	"github.com/labstack/echo/v4"

	"shopmart/internal/infrastructure/session"
	"shopmart/internal/usecase"
	"shopmart/pkg/errors"
	"shopmart/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	sessions    *session.Manager
}

func NewUserHandler(userUseCase *usecase.UserUseCase, sessions *session.Manager) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		sessions:    sessions,
	}
}

type updateProfileRequest struct {
	Name   string `json:"name" validate:"omitempty,min=2"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	// Keep the readable cache in step with the record.
	session.WriteUserCookie(c, user, h.sessions.TTL())
	return response.Success(c, user)
}

func (h *UserHandler) TrackViewed(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.TrackViewed(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	session.WriteUserCookie(c, user, h.sessions.TTL())
	return response.Success(c, user.LastViewed)
}

func (h *UserHandler) ToggleSaved(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, saved, err := h.userUseCase.ToggleSaved(c.Request().Context(), uid, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	session.WriteUserCookie(c, user, h.sessions.TTL())
	return response.Success(c, map[string]interface{}{
		"saved":       saved,
		"saved_items": user.SavedItems,
	})
}
