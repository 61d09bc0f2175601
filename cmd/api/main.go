package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sangkips/pos-terminal/internal/application/service"
	"github.com/sangkips/pos-terminal/internal/config"
	"github.com/sangkips/pos-terminal/internal/domain/repository"
	"github.com/sangkips/pos-terminal/internal/infrastructure/database"
	"github.com/sangkips/pos-terminal/internal/infrastructure/storage"
	"github.com/sangkips/pos-terminal/internal/logger"
	"github.com/sangkips/pos-terminal/internal/presentation/http/routes"
	"github.com/sangkips/pos-terminal/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(&cfg.Log)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warn("failed to initialize printer, printing disabled", zap.Error(err))
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()

	term := service.NewTerminal(store, service.TerminalOptions{
		Printer:           thermalPrinter,
		PrinterType:       cfg.Printer.Type,
		PrinterWidth:      cfg.Printer.Width,
		LowStockThreshold: cfg.Report.LowStockThreshold,
		Logger:            log,
	})

	router := routes.Setup(term, cfg, log)

	srv := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server",
			zap.String("service", cfg.App.Name),
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env),
			zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

// openStore returns the key/value store selected by STORAGE_DRIVER
func openStore(cfg *config.Config, log *zap.Logger) (repository.KVStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("using in-memory storage, data is lost on exit")
		return storage.NewMemoryStore(), nil
	case config.StorageDriverPostgres:
		db, err := database.NewPostgresDB(&cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db, log); err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(db), nil
	default:
		return storage.NewOSFileStore(cfg.Storage.Path)
	}
}
