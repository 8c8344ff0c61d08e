package http

import (
	"net/http"

	uc "fleet-admin-backend/internal/usecase/trip"
	"fleet-admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type TripHandler struct {
	uc  *uc.Usecase
	log logger.Logger
}

func NewTripHandler(u *uc.Usecase, log logger.Logger) *TripHandler {
	return &TripHandler{uc: u, log: log}
}

type listTripsResp struct {
	Items []uc.TripDTO `json:"items"`
}

// List handles GET /trips with an optional status filter and a search over
// employee name / vehicle number.
func (h *TripHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), c.QueryParam("status"), c.QueryParam("search"))
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, listTripsResp{Items: items})
}
