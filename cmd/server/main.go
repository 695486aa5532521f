package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"

	httpapi "rentgear-backend/internal/api/http"
	"rentgear-backend/internal/config"
	"rentgear-backend/internal/logger"
	"rentgear-backend/internal/metrics"
	"rentgear-backend/internal/repository/sqlite"
	"rentgear-backend/internal/security"
	"rentgear-backend/internal/service"
	"rentgear-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentGear backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "path", cfg.Database.Path)

	// Initialize Database
	db, err := sql.Open("sqlite3", cfg.GetDatabaseDSN())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := sqlite.NewStore(db)
	if err := store.InitSchema(context.Background()); err != nil {
		logger.Error("Failed to initialize database schema", "error", err)
		log.Fatalf("Failed to initialize database schema: %v", err)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Storage
	localStorage, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize local storage", "error", err)
		log.Fatalf("Failed to initialize local storage: %v", err)
	}

	// Initialize Notification Channel
	var notifier service.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = service.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Error("Failed to initialize telegram notifier", "error", err)
			log.Fatalf("Failed to initialize telegram notifier: %v", err)
		}
		logger.Info("Telegram notifications enabled", "chat_id", cfg.Telegram.ChatID)
	} else {
		logger.Warn("Telegram notifications disabled; operator events will only be logged")
	}

	// Initialize Services
	authSvc := service.NewAuthService(store.AdminUserRepository, tokenManager)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.EquipmentRepository, notifier, cfg.Booking.BlockOnPending)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.EquipmentRepository)
	expenseSvc := service.NewExpenseService(store.ExpenseRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	articleSvc := service.NewArticleService(store.ArticleRepository)
	lockerSvc := service.NewLockerService(store.LockerRepository)
	reportSvc := service.NewReportService(store.RentalRepository, store.ExpenseRepository)
	contactSvc := service.NewContactService(notifier)

	// Seed the configured admin account on first start
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authSvc.EnsureAdminUser(seedCtx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		cancel()
		logger.Error("Failed to ensure admin user", "error", err)
		log.Fatalf("Failed to ensure admin user: %v", err)
	}
	cancel()

	// Initialize Metrics
	metrics.Register()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:        authSvc,
		Equipment:   equipmentSvc,
		Bookings:    bookingSvc,
		Rentals:     rentalSvc,
		Expenses:    expenseSvc,
		Customers:   customerSvc,
		Articles:    articleSvc,
		Lockers:     lockerSvc,
		Reports:     reportSvc,
		Contact:     contactSvc,
		Tokens:      tokenManager,
		Storage:     localStorage,
		MaxFileSize: cfg.Storage.MaxFileSize,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
