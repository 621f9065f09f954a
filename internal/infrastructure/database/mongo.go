package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Giữ nguyên tên mà dữ liệu cũ đang dùng.
const (
	CollectionDonors       = "donors"
	CollectionAppointments = "appointments"
	CollectionBloodUnits   = "bloodunits"
)

// MongoConfig chứa các thông tin cấu hình để kết nối MongoDB
type MongoConfig struct {
	URI      string // Connection string (mongodb:// hoặc mongodb+srv://)
	Database string // Tên database, mặc định blood_donation
	AppName  string // Hiển thị trong server logs của MongoDB

	// Retry Configuration
	ConnectTimeout time.Duration // Timeout cho mỗi lần thử kết nối
	MaxRetries     int           // Số lần retry tối đa khi kết nối thất bại
	RetryDelay     time.Duration // Delay ban đầu giữa các lần retry
}

// MongoDB quản lý một client duy nhất cho cả process.
// Handle được tạo lần đầu trong EnsureConnection và dùng lại cho tới Close.
type MongoDB struct {
	Config *MongoConfig

	mu       sync.Mutex
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoDB tạo instance mới, chưa kết nối
func NewMongoDB(config *MongoConfig) *MongoDB {
	return &MongoDB{Config: config}
}

// EnsureConnection kết nối ở lần gọi đầu tiên, các lần sau trả về handle đã cache
func (db *MongoDB) EnsureConnection(ctx context.Context) (*mongo.Database, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.database != nil {
		return db.database, nil
	}

	if db.Config == nil || db.Config.URI == "" {
		return nil, fmt.Errorf("mongodb connection string is not configured")
	}

	client, err := db.connectWithRetry(ctx)
	if err != nil {
		return nil, fmt.Errorf("connection failed: %w", err)
	}

	db.client = client
	db.database = client.Database(db.Config.Database)

	log.Info().
		Str("component", "database").
		Str("database", db.Config.Database).
		Msg("MongoDB connection established")

	return db.database, nil
}

// connectWithRetry thử kết nối với exponential backoff
// Attempt 1: delay, Attempt 2: delay*2, Attempt 3: delay*4 ...
func (db *MongoDB) connectWithRetry(ctx context.Context) (*mongo.Client, error) {
	maxRetries := db.Config.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Debug().
			Str("component", "database").
			Int("attempt", attempt).
			Int("max_attempts", maxRetries).
			Msg("Connecting to MongoDB")

		client, err := db.connectOnce(ctx)
		if err == nil {
			return client, nil
		}
		lastErr = err

		log.Warn().
			Str("component", "database").
			Int("attempt", attempt).
			Err(err).
			Msg("MongoDB connection attempt failed")

		if attempt < maxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

func (db *MongoDB) connectOnce(ctx context.Context) (*mongo.Client, error) {
	timeout := db.Config.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetAppName(db.Config.AppName).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping failed: %w", err)
	}

	return client, nil
}

// Collection trả về collection theo tên, kết nối nếu cần
func (db *MongoDB) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	database, err := db.EnsureConnection(ctx)
	if err != nil {
		return nil, err
	}
	return database.Collection(name), nil
}

// EnsureIndexes tạo các index mà schema cần.
// bagNumber là unique, uniqueness do database enforce chứ không phải application.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	database, err := db.EnsureConnection(ctx)
	if err != nil {
		return err
	}

	indexes := map[string][]mongo.IndexModel{
		CollectionBloodUnits: {
			{
				Keys:    bson.D{{Key: "bagNumber", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("bagNumber_unique"),
			},
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("createdAt_desc"),
			},
		},
		CollectionAppointments: {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("createdAt_desc"),
			},
		},
	}

	for name, models := range indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}

	return nil
}

// HealthCheck ping database với timeout 5s
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	db.mu.Lock()
	client := db.client
	db.mu.Unlock()

	if client == nil {
		return fmt.Errorf("database client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(healthCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close ngắt kết nối. Gọi nhiều lần vẫn an toàn.
func (db *MongoDB) Close(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.client == nil {
		return nil
	}

	err := db.client.Disconnect(ctx)
	db.client = nil
	db.database = nil
	return err
}
