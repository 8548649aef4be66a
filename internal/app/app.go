package app

import (
	"log"
	"time"

	"ponyexpress/backend/internal/config"
	"ponyexpress/backend/internal/handler"
	"ponyexpress/backend/internal/pkg/auth"
	"ponyexpress/backend/internal/repository"
	"ponyexpress/backend/internal/service"
)

func Run(cfg *config.Config) {
	db, err := repository.NewDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if cfg.SeedFile != "" {
		if err := repository.LoadSeed(db, cfg.SeedFile); err != nil {
			log.Fatal(err)
		}
	}

	tokens := auth.NewTokenManager(cfg.JWTKey, 24*time.Hour)
	middleware := handler.NewMiddleware(tokens)

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	userService := service.NewUserService(userRepo, chatRepo)
	chatService := service.NewChatService(chatRepo)
	userHandler := handler.NewUserHandler(userService, middleware)
	chatHandler := handler.NewChatHandler(chatService, userService, middleware)
	authHandler := handler.NewAuthHandler(userService, tokens)

	server := NewServer(userHandler, chatHandler, authHandler)
	server.Run(cfg.ServerPort)
}
