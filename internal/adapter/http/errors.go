package http

import (
	"net/http"

	"fleet-admin-backend/internal/domain/fleeterr"
	"fleet-admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// respondError maps the shared error taxonomy to HTTP. conflictMsg is the
// entity-specific message shown for uniqueness violations, distinct from the
// generic failure text.
func respondError(c echo.Context, log logger.Logger, err error, conflictMsg string) error {
	switch {
	case fleeterr.IsValidation(err):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case fleeterr.IsConflict(err):
		if conflictMsg == "" {
			conflictMsg = "already exists"
		}
		return c.JSON(http.StatusConflict, ErrorResponse{Error: conflictMsg})
	case fleeterr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case fleeterr.IsAborted(err):
		// The request was superseded or the client went away; nothing to
		// report and no state to clear.
		return nil
	default:
		if log != nil {
			log.Error("request failed", logger.String("path", c.Path()), logger.Error(err))
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
