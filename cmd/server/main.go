package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/symptom-checker-server/internal/api"
	"github.com/symptom-checker-server/internal/config"
	"github.com/symptom-checker-server/internal/domain"
	"github.com/symptom-checker-server/internal/history"
	"github.com/symptom-checker-server/internal/service"
	"github.com/symptom-checker-server/pkg/providers"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging)
	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
		"mode": cfg.Providers.Mode,
	}).Info("Starting symptom checker server")

	engine := service.NewEngine(logger)
	resolver := buildResolver(cfg, logger)
	store := buildStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	server := api.NewServer(cfg, logger, engine, resolver, store)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// buildResolver wires the provider stack for the configured mode.
// Rules mode runs without any external providers.
func buildResolver(cfg *domain.Config, logger *logrus.Logger) api.AnalysisResolver {
	if cfg.Providers.Mode == providers.ModeRules {
		return nil
	}

	local := providers.NewOllamaClient(cfg.Providers.Ollama)
	remote := providers.NewOpenAIClient(cfg.Providers.OpenAI)

	var localProvider, remoteProvider providers.Provider
	localProvider = local
	if remote != nil {
		remoteProvider = remote
	} else if cfg.Providers.Mode != providers.ModeLocal {
		logger.Warn("OpenAI API key is not set, remote analysis unavailable")
	}

	return providers.NewResolver(cfg.Providers.Mode, localProvider, remoteProvider, logger)
}

func buildStore(cfg *domain.Config, logger *logrus.Logger) history.Store {
	switch cfg.History.Backend {
	case "sqlite":
		store, err := history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			logger.WithError(err).Fatal("Failed to open history store")
		}
		return store
	case "postgres":
		store, err := history.NewPostgresStoreFromURL(cfg.History.DatabaseURL)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to history database")
		}
		return store
	default:
		logger.Info("History storage disabled")
		return nil
	}
}
