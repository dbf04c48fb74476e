package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mliou521/Inkwell/internal/api/controller"
	"mliou521/Inkwell/internal/api/repository"
	"mliou521/Inkwell/internal/api/service"
	"mliou521/Inkwell/internal/config"
	"mliou521/Inkwell/internal/db"
	"mliou521/Inkwell/internal/logger"
	"mliou521/Inkwell/internal/server"
	"mliou521/Inkwell/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	postRepo := repository.NewPostRepository(pool)

	// Create services
	userService := service.NewUserService(userRepo, sessionRepo)
	postService := service.NewPostService(postRepo)

	// Create controllers
	userController := controller.NewUserController(userService)
	postController := controller.NewPostController(postService)

	// Create the Gin-based server
	srv := server.NewServer(userController, postController, sessionRepo)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
