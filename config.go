package main

import "github.com/kelseyhightower/envconfig"

// Config holds process configuration sourced from the environment.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"shopdb"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":1234"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("shop", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
