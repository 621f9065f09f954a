package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blood-donation-backend/internal/domains/dashboard"
	"blood-donation-backend/internal/shared/middleware"
	"blood-donation-backend/internal/shared/response"
)

type DashboardHandler struct {
	service dashboard.Service
}

func NewDashboardHandler(service dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetSummary handles GET /dashboard/summary
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context())
	if err != nil {
		status, message, code := dashboard.MapErrorToHTTP(err)
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Msg("Dashboard summary failed")
		response.Error(c, status, code, message)
		return
	}

	response.JSON(c, http.StatusOK, summary)
}
