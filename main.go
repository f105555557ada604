package main

import (
	"os"

	"community-api/core/logger"
	"community-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		os.Exit(1)
	}
}
