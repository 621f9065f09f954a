package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blood-donation-backend/internal/domains/donor"
	"blood-donation-backend/internal/shared/middleware"
	"blood-donation-backend/internal/shared/response"
)

// DonorHandler handles HTTP requests for donor domain
type DonorHandler struct {
	service donor.Service
}

func NewDonorHandler(service donor.Service) *DonorHandler {
	return &DonorHandler{service: service}
}

// ListDonors handles GET /donors
func (h *DonorHandler) ListDonors(c *gin.Context) {
	var filter donor.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	donors, err := h.service.ListDonors(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, donors)
}

// GetDonor handles GET /donors/:id
func (h *DonorHandler) GetDonor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	d, err := h.service.GetDonor(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, d)
}

// CreateDonor handles POST /donors
func (h *DonorHandler) CreateDonor(c *gin.Context) {
	var req donor.DonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	created, err := h.service.CreateDonor(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// UpdateDonor handles PUT /donors/:id
func (h *DonorHandler) UpdateDonor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req donor.DonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	updated, err := h.service.UpdateDonor(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// DeleteDonor handles DELETE /donors/:id
func (h *DonorHandler) DeleteDonor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteDonor(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Donor deleted successfully")
}

// parseID: id sai format không thể trỏ tới record nào nên trả 404
func (h *DonorHandler) parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		h.fail(c, donor.NewDonorNotFound())
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *DonorHandler) fail(c *gin.Context, err error) {
	status, message, code, details := donor.MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("code", code).
			Msg("Donor request failed")
	}

	if len(details) > 0 {
		response.ErrorWithDetails(c, status, code, message, details)
		return
	}
	response.Error(c, status, code, message)
}
