package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bun612/shop-api/entity"
)

// setupDatabase opens the connection and runs the idempotent schema
// migration. Called once from main before any traffic is served.
func setupDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%d sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	if err := db.AutoMigrate(
		&entity.Product{},
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},
	); err != nil {
		return nil, errors.Wrap(err, "run migrations")
	}
	logrus.Info("database schema ready")
	return db, nil
}
