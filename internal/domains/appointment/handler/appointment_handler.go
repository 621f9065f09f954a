package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/appointment"
	"blood-donation-backend/internal/shared/middleware"
	"blood-donation-backend/internal/shared/response"
)

type AppointmentHandler struct {
	service appointment.Service
}

func NewAppointmentHandler(service appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// ListAppointments handles GET /appointments
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	var filter appointment.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, appointments)
}

// GetAppointment handles GET /appointments/:id
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// CreateAppointment handles POST /appointments
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req appointment.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// UpdateStatus handles PUT /appointments/:id
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req appointment.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// DeleteAppointment handles DELETE /appointments/:id
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Appointment deleted successfully")
}

func (h *AppointmentHandler) parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.fail(c, appointment.NewAppointmentNotFound())
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *AppointmentHandler) fail(c *gin.Context, err error) {
	status, message, code, details := appointment.MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("code", code).
			Msg("Appointment request failed")
	}

	if len(details) > 0 {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.Error(c, status, code, message)
}
