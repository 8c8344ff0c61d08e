package http

import (
	"net/http"

	uc "fleet-admin-backend/internal/usecase/dashboard"
	"fleet-admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	uc  *uc.Usecase
	log logger.Logger
}

func NewDashboardHandler(u *uc.Usecase, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: u, log: log}
}

// Stats handles GET /dashboard/stats. The aggregation is all-or-nothing, so
// a single failed count surfaces as one generic load failure.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, stats)
}
