package main

import (
	"log"

	"backend/config"
	"backend/pkg/logger"
	"backend/routes"
)

func main() {
	config.Load()

	appLog, err := logger.New(config.Getenv("LOG_MODE", "dev"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLog.Sync()

	// The json-scan backend reads the corpus directly and needs no store.
	if config.Backend() != "json" {
		if err := config.InitDB(); err != nil {
			appLog.Fatal("failed to initialize database", "error", err)
		}
	}

	r := routes.SetupRouter(appLog)

	addr := ":" + config.Getenv("PORT", "8080")
	appLog.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
