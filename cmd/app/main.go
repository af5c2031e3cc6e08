package main

import (
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/config"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/pkg/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.NewLogger().Fatalf("Error loading .env file: %v", err)
	}
	logger := log.NewLogger()

	env, err := config.LoadEnv()
	if err != nil {
		logger.Fatal(err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithEnv(env),
		config.WithValidator(validator),
		config.WithUtils(),
		config.WithMiddleware(),
		config.WithRedisServer(),
		config.WithWebSocket(),
		config.WithGeminiClient(),
		config.WithEmotionChain(),
		config.WithTimelineStore(),
		config.WithCatalog(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
