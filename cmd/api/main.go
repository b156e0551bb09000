package main

import (
	"context"
	"os"

	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/server"
)

// @title Alumni Network API
// @version 1.0
// @description REST API for the alumni network: registration with admin approval, directory, events, news, forums, gallery, board minutes and donations.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	srv, err := server.NewServer(context.Background())
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
