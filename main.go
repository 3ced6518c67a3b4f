// @title Soft Skill Practice Service
// @version 1.0.0
// @description Microservice for managing soft skill practice sessions and progress tracking.

// @host localhost:8000
// @BasePath /
package main

import (
	"flag"
	"log"

	"github.com/javier223222/soft-skills-practice-api/internal/app"
	"github.com/javier223222/soft-skills-practice-api/internal/config"
	"github.com/javier223222/soft-skills-practice-api/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	application.Run()
}
