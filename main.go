package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"disneycatalog/internal/api"
	"disneycatalog/internal/auth"
	"disneycatalog/internal/config"
	"disneycatalog/internal/database"
	"disneycatalog/internal/links"
	"disneycatalog/internal/logger"
	"disneycatalog/internal/mail"
	"disneycatalog/internal/repositories"
	"disneycatalog/internal/services"
	"disneycatalog/internal/upload"
)

func main() {
	resetDB := flag.Bool("reset-db", false, "drop and recreate the database schema, then exit")
	flag.Parse()

	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if *resetDB {
		if err := database.Reset(db); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		log.Println("Database schema recreated")
		return
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up collaborators
	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}
	linkBuilder := links.NewBuilder(cfg.BaseURL, cfg.DefaultImageURL)
	tokens := auth.New(cfg.JWTSecret)

	var mailer mail.Mailer = mail.Noop{}
	if cfg.MailAPIKey != "" {
		mailer = mail.NewClient(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailFrom)
	}

	// Set up repositories and services
	userRepo := repositories.NewUserRepository(db)
	characterRepo := repositories.NewCharacterRepository(db, linkBuilder)
	filmRepo := repositories.NewFilmRepository(db, linkBuilder)
	genreRepo := repositories.NewGenreRepository(db, linkBuilder)

	authService := services.NewAuthService(userRepo, tokens, mailer)
	characterService := services.NewCharacterService(characterRepo)
	filmService := services.NewFilmService(filmRepo)
	genreService := services.NewGenreService(genreRepo)

	// Set up router
	router := api.NewRouter(tokens, uploads, authService, characterService, filmService, genreService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
