package handlers

import (
	"errors"
	"net/http"

	"threadmart/internal/common"
	"threadmart/internal/models"
	"threadmart/internal/repositories"
	"threadmart/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// AuthHandlers handles signup, login, OTP and password-reset requests.
type AuthHandlers struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
}

// NewAuthHandlers creates a new auth handlers instance.
func NewAuthHandlers(authService services.AuthService, userRepo repositories.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandlers) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	email, err := common.ValidateEmail(req.Email, "email")
	if err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}

	user, session, err := h.authService.SignUp(ctx, email, req.Name, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user":    user,
		"session": session,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	email, err := common.ValidateEmail(req.Email, "email")
	if err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}

	session, err := h.authService.SignIn(ctx, email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			return common.SendUnauthorizedError(c)
		}
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session": session,
	})
}

// RequestOTP handles POST /api/auth/otp/request
func (h *AuthHandlers) RequestOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email   string `json:"email"`
		Purpose string `json:"purpose"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	email, err := common.ValidateEmail(req.Email, "email")
	if err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}

	if err := h.authService.RequestOTP(ctx, email, req.Purpose); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "OTP sent",
	})
}

// VerifyOTP handles POST /api/auth/otp/verify
func (h *AuthHandlers) VerifyOTP(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email   string `json:"email"`
		Code    string `json:"code"`
		Purpose string `json:"purpose"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	email, err := common.ValidateEmail(req.Email, "email")
	if err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}

	if err := h.authService.VerifyOTP(ctx, email, req.Code, req.Purpose); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "OTP verified",
	})
}

// ResetPassword handles POST /api/auth/password/reset
func (h *AuthHandlers) ResetPassword(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	email, err := common.ValidateEmail(req.Email, "email")
	if err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}

	if err := h.authService.ResetPassword(ctx, email, req.Code, req.NewPassword); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Password updated",
	})
}

// Me handles GET /api/me
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	user, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Token subjects live at the auth provider; a missing row just
			// means the profile was never mirrored.
			email, _ := common.GetUserEmailFromContext(ctx)
			return c.JSON(http.StatusOK, map[string]interface{}{
				"user": &models.User{ID: userID, Email: email},
			})
		}
		return respondServiceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": user,
	})
}
