package http

import (
	"net/http"

	uc "fleet-admin-backend/internal/usecase/receipt"
	"fleet-admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ReceiptHandler struct {
	uc  *uc.Usecase
	log logger.Logger
}

func NewReceiptHandler(u *uc.Usecase, log logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{uc: u, log: log}
}

// List handles GET /receipts: every receipt newest-first plus the
// total-expense aggregate.
func (h *ReceiptHandler) List(c echo.Context) error {
	res, err := h.uc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, res)
}
