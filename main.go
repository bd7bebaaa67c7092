// Package main is the entry point for the fintrack API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"log"
	"os"

	"fintrack/src/app/server"
	"fintrack/src/infra/config"
	"fintrack/src/infra/db"
	"fintrack/src/infra/logger"
	"fintrack/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"database_url_set", cfg.Database.UsesURL(),
	)

	// No pool and no startup ping: each request opens its own connection,
	// so an unreachable database shows up per request as a 500.
	factory := db.NewFactory(log)
	financeRepo := repo.NewPostgresRepository(factory, log)

	srv := server.New(cfg, log, financeRepo)

	return srv.Run()
}
