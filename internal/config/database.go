package config

import (
	"blood-donation-backend/internal/infrastructure/database"
)

// DatabaseConfig chuyển Mongo config sang struct mà database layer cần
func (c *Config) DatabaseConfig() *database.MongoConfig {
	return &database.MongoConfig{
		URI:            c.Mongo.URI,
		Database:       c.Mongo.Database,
		AppName:        c.App.Name,
		ConnectTimeout: c.Mongo.ConnectTimeout,
		MaxRetries:     c.Mongo.MaxRetries,
		RetryDelay:     c.Mongo.RetryDelay,
	}
}
