package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/bloodunit"
	"blood-donation-backend/internal/shared/middleware"
	"blood-donation-backend/internal/shared/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BloodUnitHandler struct {
	service bloodunit.Service
}

func NewBloodUnitHandler(service bloodunit.Service) *BloodUnitHandler {
	return &BloodUnitHandler{service: service}
}

// ListBloodUnits handles GET /blood-units
func (h *BloodUnitHandler) ListBloodUnits(c *gin.Context) {
	var filter bloodunit.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	units, err := h.service.ListBloodUnits(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, units)
}

// ExportBloodUnits handles GET /blood-units/export
func (h *BloodUnitHandler) ExportBloodUnits(c *gin.Context) {
	var filter bloodunit.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	data, err := h.service.ExportBloodUnits(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("blood-units-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GetBloodUnit handles GET /blood-units/:id
func (h *BloodUnitHandler) GetBloodUnit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	unit, err := h.service.GetBloodUnit(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, unit)
}

// CreateBloodUnit handles POST /blood-units
func (h *BloodUnitHandler) CreateBloodUnit(c *gin.Context) {
	var req bloodunit.BloodUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.CreateBloodUnit(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// UpdateBloodUnit handles PUT /blood-units/:id
func (h *BloodUnitHandler) UpdateBloodUnit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req bloodunit.BloodUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	updated, err := h.service.UpdateBloodUnit(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// DeleteBloodUnit handles DELETE /blood-units/:id
func (h *BloodUnitHandler) DeleteBloodUnit(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBloodUnit(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Blood unit deleted successfully")
}

func (h *BloodUnitHandler) parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.fail(c, bloodunit.NewBloodUnitNotFound())
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *BloodUnitHandler) fail(c *gin.Context, err error) {
	status, message, code, details := bloodunit.MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("code", code).
			Msg("Blood unit request failed")
	}

	if len(details) > 0 {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.Error(c, status, code, message)
}
