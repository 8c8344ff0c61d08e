package http

import (
	"net/http"

	"fleet-admin-backend/internal/adapter/middleware"
	uc "fleet-admin-backend/internal/usecase/employee"
	"fleet-admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SettingsHandler serves the current user's profile form.
type SettingsHandler struct {
	uc  *uc.Usecase
	log logger.Logger
}

func NewSettingsHandler(u *uc.Usecase, log logger.Logger) *SettingsHandler {
	return &SettingsHandler{uc: u, log: log}
}

func (h *SettingsHandler) GetProfile(c echo.Context) error {
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

type updateProfileReq struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

func (h *SettingsHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.UpdateProfile(c.Request().Context(), userID, uc.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, dto)
}
