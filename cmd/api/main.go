package main

import (
	"os"

	"github.com/hooplannedthis/api/internal/pkg/logger"
	"github.com/hooplannedthis/api/internal/server"
)

// @title HooPlannedThis API
// @version 1.0
// @description Student government management: advisors, class councils, committees, member roles and events.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Member session token, "Bearer <token>"

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
// @description Admin token from POST /admin/unlock

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// The logger package's init configured a default logger
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
