package main

import (
	"os"

	"github.com/alumnet/api/internal/pkg/logger"
	"github.com/alumnet/api/internal/server"
)

func main() {
	srv, err := server.New()
	if err != nil {
		logger.Error().Err(err).Msg("Startup failed")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
