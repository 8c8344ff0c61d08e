package http

import (
	"net/http"
	"time"

	"fleet-admin-backend/internal/adapter/middleware"
	uc "fleet-admin-backend/internal/usecase/employee"
	"fleet-admin-backend/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	uc     *uc.Usecase
	secret string
	log    logger.Logger
}

func NewAuthHandler(u *uc.Usecase, secret string, log logger.Logger) *AuthHandler {
	return &AuthHandler{uc: u, secret: secret, log: log}
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token string         `json:"token"`
	User  uc.EmployeeDTO `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	user, err := h.uc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Deliberately indistinct: wrong email and wrong password look the
		// same to the caller.
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, loginResp{Token: token, User: *user})
}

// Me handles GET /auth/me: the employee behind the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	dto, err := h.uc.Profile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, dto)
}

// Logout acknowledges sign-out; token invalidation is the client dropping it.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "signed out"})
}
