package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/errors"
	authdto "github.com/mindvoice-team/mindvoice-backend/internal/adapter/dto/auth"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	useruse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/user"
)

// Auth handles account and session endpoints
type Auth struct {
	svc    useruse.Service
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc useruse.Service, logger *zap.Logger) *Auth {
	return &Auth{svc: svc, logger: logger}
}

// Register creates an account and opens a session
func (h *Auth) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	user, token, err := h.svc.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, authdto.NewAuthResponse(user, token))
}

// Login verifies credentials and opens a session
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	user, token, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, authdto.NewAuthResponse(user, token))
}

// Logout drops the session mirror
func (h *Auth) Logout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}
	if err := h.svc.Logout(c.Request().Context(), userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "logged_out"})
}

// Me returns the authenticated account
func (h *Auth) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	user, err := h.svc.GetByID(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, user.ToPublic())
}

// UpdateProfile applies profile field changes
func (h *Auth) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req authdto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), userID, useruse.ProfileUpdate{
		Name:      req.Name,
		Phone:     req.Phone,
		Birthdate: req.Birthdate,
		Bio:       req.Bio,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, user.ToPublic())
}

// SavePreferences replaces the preferences document
func (h *Auth) SavePreferences(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req authdto.SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.svc.SavePreferences(c.Request().Context(), userID, req.Preferences); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "saved"})
}

// SavePrivacySettings replaces the privacy document
func (h *Auth) SavePrivacySettings(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req authdto.SavePrivacyRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.svc.SavePrivacySettings(c.Request().Context(), userID, req.PrivacySettings); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "saved"})
}

// ChangePassword verifies and replaces the password
func (h *Auth) ChangePassword(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req authdto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.svc.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "password_changed"})
}

// DeleteAccount removes the account and everything it owns
func (h *Auth) DeleteAccount(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req authdto.DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if err := h.svc.DeleteAccount(c.Request().Context(), userID, req.ConfirmEmail); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "account_deleted"})
}
