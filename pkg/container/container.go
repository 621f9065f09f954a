package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blood-donation-backend/internal/config"
	infraCache "blood-donation-backend/internal/infrastructure/cache"
	"blood-donation-backend/internal/infrastructure/database"
	"blood-donation-backend/pkg/cache"

	"blood-donation-backend/internal/domains/appointment"
	appointmentHandler "blood-donation-backend/internal/domains/appointment/handler"
	appointmentRepo "blood-donation-backend/internal/domains/appointment/repository"
	appointmentService "blood-donation-backend/internal/domains/appointment/service"

	"blood-donation-backend/internal/domains/bloodunit"
	bloodunitHandler "blood-donation-backend/internal/domains/bloodunit/handler"
	bloodunitRepo "blood-donation-backend/internal/domains/bloodunit/repository"
	bloodunitService "blood-donation-backend/internal/domains/bloodunit/service"

	"blood-donation-backend/internal/domains/dashboard"
	dashboardHandler "blood-donation-backend/internal/domains/dashboard/handler"
	dashboardService "blood-donation-backend/internal/domains/dashboard/service"

	"blood-donation-backend/internal/domains/donor"
	donorHandler "blood-donation-backend/internal/domains/donor/handler"
	donorRepo "blood-donation-backend/internal/domains/donor/repository"
	donorService "blood-donation-backend/internal/domains/donor/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Thứ tự khởi tạo: Config → Infrastructure → Repositories → Services → Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.MongoDB
	Cache  cache.Cache // nil khi Redis tắt hoặc không kết nối được

	redis *infraCache.RedisCache

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	DonorRepo       donor.Repository
	AppointmentRepo appointment.Repository
	BloodUnitRepo   bloodunit.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	DonorService       donor.Service
	AppointmentService appointment.Service
	BloodUnitService   bloodunit.Service
	DashboardService   dashboard.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	DonorHandler       *donorHandler.DonorHandler
	AppointmentHandler *appointmentHandler.AppointmentHandler
	BloodUnitHandler   *bloodunitHandler.BloodUnitHandler
	DashboardHandler   *dashboardHandler.DashboardHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph.
// MongoDB là bắt buộc, Redis lỗi chỉ log warning và chạy không cache.
func NewContainer(cfg *config.Config) (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: MONGODB
	// ========================================
	db := database.NewMongoDB(cfg.DatabaseConfig())

	// Mỗi lần thử đã có ConnectTimeout riêng
	if _, err := db.EnsureConnection(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.EnsureIndexes(ctx); err != nil {
		_ = db.Close(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 2: REDIS (NON-CRITICAL)
	// ========================================
	c.initCache()

	// ========================================
	// STEP 3..5: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Bool("cache_enabled", c.Cache != nil).Msg("DI container initialized")
	return c, nil
}

func (c *Container) initCache() {
	if !c.Config.Redis.Enabled {
		log.Info().Msg("Redis disabled, dashboard summary will not be cached")
		return
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		// Redis failure không critical - log warning và continue
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), running without cache")
		_ = rc.Close()
		return
	}

	c.redis = rc
	c.Cache = rc
}

func (c *Container) initRepositories() {
	c.DonorRepo = donorRepo.NewMongoRepository(c.DB)
	c.AppointmentRepo = appointmentRepo.NewMongoRepository(c.DB)
	c.BloodUnitRepo = bloodunitRepo.NewMongoRepository(c.DB)
}

func (c *Container) initServices() {
	c.DonorService = donorService.NewDonorService(c.DonorRepo, c.Cache)
	c.AppointmentService = appointmentService.NewAppointmentService(c.AppointmentRepo, c.Cache)
	c.BloodUnitService = bloodunitService.NewBloodUnitService(c.BloodUnitRepo, c.Cache)

	// Dashboard đọc trực tiếp từ ba repository
	c.DashboardService = dashboardService.NewDashboardService(
		c.DonorRepo,
		c.AppointmentRepo,
		c.BloodUnitRepo,
		c.Cache,
		dashboardService.Config{
			StockTarget: c.Config.Dashboard.StockTarget,
			CacheTTL:    c.Config.Dashboard.CacheTTL,
		},
	)
}

func (c *Container) initHandlers() {
	c.DonorHandler = donorHandler.NewDonorHandler(c.DonorService)
	c.AppointmentHandler = appointmentHandler.NewAppointmentHandler(c.AppointmentService)
	c.BloodUnitHandler = bloodunitHandler.NewBloodUnitHandler(c.BloodUnitService)
	c.DashboardHandler = dashboardHandler.NewDashboardHandler(c.DashboardService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources")

	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB")
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}

	log.Info().Msg("Container cleanup completed")
}
