package http

import (
	"mime/multipart"
	"net/http"

	uc "fleet-admin-backend/internal/usecase/vehicle"
	"fleet-admin-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

const vehicleConflictMsg = "Vehicle with this number already exists"

type VehicleHandler struct {
	uc  *uc.Usecase
	log logger.Logger
}

func NewVehicleHandler(u *uc.Usecase, log logger.Logger) *VehicleHandler {
	return &VehicleHandler{uc: u, log: log}
}

// List handles GET /vehicles: one fixed-size batch of the infinite-scroll
// grid plus the has-more flag.
func (h *VehicleHandler) List(c echo.Context) error {
	page := atoiDefault(c.QueryParam("page"), 0)
	res, err := h.uc.Batch(c.Request().Context(), page, c.QueryParam("search"))
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, res)
}

// Create handles POST /vehicles as multipart form data: the vehicle fields
// plus an optional image file. The row is created first; a failed image
// phase still reports the created vehicle.
func (h *VehicleHandler) Create(c echo.Context) error {
	in := uc.CreateVehicleInput{
		VehicleNumber: c.FormValue("vehicle_number"),
		VehicleType:   c.FormValue("vehicle_type"),
	}
	img, err := h.stageFormImage(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}

	dto, err := h.uc.Create(c.Request().Context(), in, img)
	if err != nil {
		if dto != nil {
			// Two-phase partial failure: the vehicle exists without its image.
			return c.JSON(http.StatusCreated, map[string]any{
				"vehicle":     dto,
				"image_error": "image upload failed, vehicle saved without image",
			})
		}
		return respondError(c, h.log, err, vehicleConflictMsg)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *VehicleHandler) Update(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}
	in := uc.UpdateVehicleInput{
		VehicleNumber: c.FormValue("vehicle_number"),
		VehicleType:   c.FormValue("vehicle_type"),
		ImageURL:      c.FormValue("image_url"),
	}
	img, err := h.stageFormImage(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}

	dto, err := h.uc.Update(c.Request().Context(), vehicleID, in, img)
	if err != nil {
		return respondError(c, h.log, err, vehicleConflictMsg)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *VehicleHandler) ToggleStatus(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing id path param"})
	}
	var req toggleStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.ToggleStatus(c.Request().Context(), vehicleID, req.CurrentStatus); err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(http.StatusOK, map[string]any{"id": vehicleID, "is_active": !req.CurrentStatus})
}

// stageFormImage stages the optional "image" multipart file. A missing file
// is not an error; a non-image or oversized file is.
func (h *VehicleHandler) stageFormImage(c echo.Context) (*uc.StagedImage, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return h.uc.StageImage(fh.Filename, contentTypeOf(fh), fh.Size, src)
}

func contentTypeOf(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}
