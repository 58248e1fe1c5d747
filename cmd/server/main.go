package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "crm-backend/internal/api/http"
	"crm-backend/internal/config"
	"crm-backend/internal/hub"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository/postgres"
	"crm-backend/internal/security"
	"crm-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CRM backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Notification Hub
	notificationHub := hub.New()
	if cfg.Notifications.SeedDemoData {
		notificationHub.Seed(hub.DemoSeed())
		logger.Info("Notification hub seeded with demo data")
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	customerSvc := service.NewCustomerService(store.CustomerRepository, notificationHub)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository)
	productSvc := service.NewProductService(store.ProductRepository)
	contractSvc := service.NewContractService(store.ContractRepository, store.CustomerRepository, notificationHub)
	campaignSvc := service.NewCampaignService(store.CampaignRepository, store.CustomerRepository, emailSvc, notificationHub)
	taskSvc := service.NewTaskService(store.TaskRepository, store.EmployeeRepository, emailSvc)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	analyticsSvc := service.NewAnalyticsService(store.AnalyticsRepository)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:          httpapi.NewAuthHandler(authSvc),
		Customers:     httpapi.NewCustomerHandler(customerSvc),
		Employees:     httpapi.NewEmployeeHandler(employeeSvc),
		Products:      httpapi.NewProductHandler(productSvc),
		Contracts:     httpapi.NewContractHandler(contractSvc),
		Campaigns:     httpapi.NewCampaignHandler(campaignSvc),
		Tasks:         httpapi.NewTaskHandler(taskSvc),
		Analytics:     httpapi.NewAnalyticsHandler(analyticsSvc),
		Notifications: httpapi.NewNotificationHandler(notificationHub),
	}

	router := httpapi.NewRouter(handlers, tokenManager)

	// Shutdown waits for in-flight requests but never interrupts them, so
	// open notification streams would pin it until the timeout. Canceling
	// the base context on shutdown ends every stream promptly.
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // the notification stream is long-lived
		IdleTimeout:  60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelStreams)

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
