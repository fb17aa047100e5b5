package main

import (
	"aircon/config"
	"aircon/di"
	"aircon/helper"
	"aircon/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Aircon Lead API
// @version 1.0
// @description Booking and contact form intake with staff follow-up.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
