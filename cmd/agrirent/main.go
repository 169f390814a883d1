package main

import (
	"os"

	"agrirent/internal/cli"
	"agrirent/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	log := logger.New()
	logger.SetDefault(log)

	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
