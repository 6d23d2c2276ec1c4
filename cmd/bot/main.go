package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Mohatm/Telegram-bot/internal/app"
	"github.com/Mohatm/Telegram-bot/internal/config"
)

func main() {
	// .env is optional, env vars win either way.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
