package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(config)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := openDatabase(config)
	if err != nil {
		return err
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}
	defer app.Close()

	server, err := app.CreateHTTPServer()
	if err != nil {
		return fmt.Errorf("create http server: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if config.IsDevelopment() {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}
	server.Register(e)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		logger.Info("http server started", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(config cmd.Config) (*zap.Logger, error) {
	if config.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return gormDB, nil
}
