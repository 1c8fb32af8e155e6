package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/plateshare/plateshare/internal/server"
	"github.com/plateshare/plateshare/internal/server/config"
)

func main() {

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
