package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/credit-service/internal/config"
	"github.com/Dan9191/credit-service/internal/handler"
	"github.com/Dan9191/credit-service/internal/repository"
	"github.com/Dan9191/credit-service/internal/service"
	"github.com/Dan9191/credit-service/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

//go:generate swag init -g main.go -d ./,../../internal/handler -o ../../docs --outputTypes go

// @title        Credit Service API
// @version      1.0
// @description  Customer registration and credit proposals.
// @BasePath     /

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	if cfg.MigrateOnStart {
		if err := repository.RunMigrations(db); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Database migrations applied")
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	customers := service.NewCustomerService(repo, logger)

	// One clock for the request checks and the credit rules.
	now := time.Now

	opts := []service.CreditOption{service.WithClock(now)}
	if cfg.EmailEnabled() {
		opts = append(opts, service.WithNotifier(email.NewSender(cfg, logger)))
		logger.Infof("Credit confirmations will be sent through %s", cfg.SMTPHost)
	}
	credits := service.NewCreditService(repo, customers, logger, opts...)

	h := handler.NewHandler(customers, credits, db, logger, handler.WithClock(now))
	r := handler.NewRouter(h, logger, handler.RouterConfig{Docs: cfg.SwaggerEnabled})
	if cfg.SwaggerEnabled {
		logger.Infof("API docs served at /swagger/index.html")
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
