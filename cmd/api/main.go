package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/owlconnect/owlconnect/internal/pkg/logger"
	"github.com/owlconnect/owlconnect/internal/server"
)

func main() {
	// .env is optional; real deployments pass environment variables directly
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
