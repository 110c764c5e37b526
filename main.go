package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/CODINGDONG1211/Lifestyleapp/config"
	"github.com/CODINGDONG1211/Lifestyleapp/handlers"
	"github.com/CODINGDONG1211/Lifestyleapp/repository"
	"github.com/CODINGDONG1211/Lifestyleapp/store"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := mustMakeLogger(cfg.LogLevel)

	logger.Info("starting server", "address", cfg.Address, "storage", cfg.Storage)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Error("cannot create data directory", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, "lifestyle.db"))
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		logger.Error("failed to initialize user repository", "error", err)
		os.Exit(1)
	}

	var documents repository.DocumentStore
	switch cfg.Storage {
	case "file":
		documents = repository.NewFileDocuments(filepath.Join(cfg.DataDir, "documents"))
	case "sqlite":
		documents, err = repository.NewSQLiteDocuments(db)
		if err != nil {
			logger.Error("failed to initialize document store", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("unknown storage backend", "storage", cfg.Storage)
		os.Exit(1)
	}
	defer documents.Close()

	sessions := store.NewManager(documents, logger, cfg.SyncDebounce)
	defer sessions.CloseAll()

	router := handlers.NewRouter(handlers.RouterConfig{
		UserRepo:    userRepo,
		Sessions:    sessions,
		Logger:      logger,
		JWTSecret:   []byte(cfg.JWTSecret),
		TokenTTL:    cfg.TokenTTL,
		CORSOrigins: cfg.CORSOrigins,
	})

	server := http.Server{
		Addr:              cfg.Address,
		ReadHeaderTimeout: 10 * time.Second,
		Handler:           router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
