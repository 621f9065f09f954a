package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"blood-donation-backend/internal/shared/middleware"
	"blood-donation-backend/internal/shared/response"
	"blood-donation-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupDonorRoutes(api, c)
		setupAppointmentRoutes(api, c)
		setupBloodUnitRoutes(api, c)
		setupDashboardRoutes(api, c)
	}

	router.NoRoute(noRouteHandler(c.Config.App.WebDir))

	return router
}

// ========================================
// DONOR ROUTES
// ========================================
func setupDonorRoutes(api *gin.RouterGroup, c *container.Container) {
	donors := api.Group("/donors")
	{
		donors.GET("", c.DonorHandler.ListDonors)
		donors.POST("", c.DonorHandler.CreateDonor)
		donors.GET("/:id", c.DonorHandler.GetDonor)
		donors.PUT("/:id", c.DonorHandler.UpdateDonor)
		donors.DELETE("/:id", c.DonorHandler.DeleteDonor)
	}
}

// ========================================
// APPOINTMENT ROUTES
// ========================================
func setupAppointmentRoutes(api *gin.RouterGroup, c *container.Container) {
	appointments := api.Group("/appointments")
	{
		appointments.GET("", c.AppointmentHandler.ListAppointments)
		appointments.POST("", c.AppointmentHandler.CreateAppointment)
		appointments.GET("/:id", c.AppointmentHandler.GetAppointment)
		appointments.PUT("/:id", c.AppointmentHandler.UpdateStatus)
		appointments.DELETE("/:id", c.AppointmentHandler.DeleteAppointment)
	}
}

// ========================================
// BLOOD UNIT ROUTES
// ========================================
func setupBloodUnitRoutes(api *gin.RouterGroup, c *container.Container) {
	units := api.Group("/blood-units")
	{
		units.GET("", c.BloodUnitHandler.ListBloodUnits)
		units.POST("", c.BloodUnitHandler.CreateBloodUnit)
		units.GET("/export", c.BloodUnitHandler.ExportBloodUnits)
		units.GET("/:id", c.BloodUnitHandler.GetBloodUnit)
		units.PUT("/:id", c.BloodUnitHandler.UpdateBloodUnit)
		units.DELETE("/:id", c.BloodUnitHandler.DeleteBloodUnit)
	}
}

// ========================================
// DASHBOARD ROUTES
// ========================================
func setupDashboardRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/dashboard/summary", c.DashboardHandler.GetSummary)
}

// ========================================
// HEALTH CHECK
// ========================================

// healthCheckHandler: MongoDB lỗi → 503, Redis lỗi chỉ làm status degraded
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		statusCode := http.StatusOK
		overall := "ok"

		dbStatus := "ok"
		if appCtx.DB == nil {
			dbStatus = "disconnected"
			overall = "unavailable"
			statusCode = http.StatusServiceUnavailable
		} else if err := appCtx.DB.HealthCheck(c.Request.Context()); err != nil {
			dbStatus = "error: " + err.Error()
			overall = "unavailable"
			statusCode = http.StatusServiceUnavailable
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disabled"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = "error: " + err.Error()
				if statusCode == http.StatusOK {
					overall = "degraded"
				}
			}
		}

		c.JSON(statusCode, gin.H{
			"status":    overall,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	}
}

// ========================================
// STATIC UI
// ========================================

// noRouteHandler: /api/* không khớp trả JSON 404.
// Khi có WEB_DIR thì phục vụ file tĩnh, path không tồn tại fallback về index.html (SPA).
func noRouteHandler(webDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if webDir == "" || strings.HasPrefix(path, "/api/") || path == "/api" {
			response.NotFound(c, "Route not found")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.NotFound(c, "Route not found")
			return
		}

		file := filepath.Join(webDir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		index := filepath.Join(webDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			response.NotFound(c, "Route not found")
			return
		}
		c.File(index)
	}
}
