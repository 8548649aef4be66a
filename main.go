// @title Pony Express
// @version 0.1.0
// @description Chat application backend.

// @host localhost:8000
// @BasePath /
// @schemes http

package main

import (
	"log"

	"ponyexpress/backend/internal/app"
	"ponyexpress/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg)
}
