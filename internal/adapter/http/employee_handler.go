package http

import (
	"net/http"
	"strconv"

	uc "fleet-admin-backend/internal/usecase/employee"
	"fleet-admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

const employeeConflictMsg = "Employee with this email already exists"

type EmployeeHandler struct {
	uc  *uc.Usecase
	log logger.Logger
}

func NewEmployeeHandler(u *uc.Usecase, log logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: u, log: log}
}

type listEmployeesResp struct {
	Items []uc.EmployeeDTO `json:"items"`
	Total int64            `json:"total"`
}

// List handles GET /employees with server-side pagination, one sort column
// and conjunctive filters.
func (h *EmployeeHandler) List(c echo.Context) error {
	in := uc.ListInput{
		Page:       atoiDefault(c.QueryParam("page"), 0),
		PageSize:   atoiDefault(c.QueryParam("page_size"), 10),
		SortColumn: c.QueryParam("sort"),
		SortDesc:   c.QueryParam("desc") == "true",
		Name:       c.QueryParam("name"),
		Role:       c.QueryParam("role"),
	}
	if v := c.QueryParam("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid is_active filter"})
		}
		in.Active = &b
	}

	items, total, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, listEmployeesResp{Items: items, Total: total})
}

type createEmployeeReq struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
	Role  string `json:"role"  validate:"omitempty,oneof=ADMIN EMPLOYEE"`
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), uc.CreateEmployeeInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		return respondError(c, h.log, err, employeeConflictMsg)
	}
	return c.JSON(http.StatusCreated, dto)
}

type updateEmployeeReq struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	employeeID := c.Param("id")
	if employeeID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}
	var req updateEmployeeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), employeeID, uc.UpdateEmployeeInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return respondError(c, h.log, err, employeeConflictMsg)
	}
	return c.JSON(http.StatusOK, dto)
}

type toggleStatusReq struct {
	CurrentStatus bool `json:"current_status"`
}

// ToggleStatus handles PATCH /employees/:id/status, flipping is_active to
// the inverse of the state the caller observed.
func (h *EmployeeHandler) ToggleStatus(c echo.Context) error {
	employeeID := c.Param("id")
	if employeeID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}
	var req toggleStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.ToggleStatus(c.Request().Context(), employeeID, req.CurrentStatus); err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, map[string]any{"id": employeeID, "is_active": !req.CurrentStatus})
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return n
}
