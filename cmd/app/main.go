package main

import (
	"os"

	"risecheckout/config"
	"risecheckout/di"
	"risecheckout/helper"
	"risecheckout/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseOutput(cfg, os.Stdout)
	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
