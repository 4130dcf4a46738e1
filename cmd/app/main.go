package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"kitchen/cmd"
	"kitchen/internal/adapters/out/postgres/migrations"
	"kitchen/internal/pkg/logging"
	"kitchen/internal/pkg/metrics"

	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	appLogger, err := logging.New(os.Stdout, config.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}

	if config.DBAutoMigrate {
		if err = migrations.Up(config.DSN()); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
		appLogger.Info("migrations applied")
	}

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		config,
		gormDB,
		cmd.NewEventPublisher(config),
		metrics.New(),
		appLogger,
	)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		appLogger.Info("http server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http server shutdown", "error", err)
	}

	if err = app.Close(); err != nil {
		appLogger.Error("release resources", "error", err)
	}
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(config.DBMaxIdleConns)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gormDB, nil
}
