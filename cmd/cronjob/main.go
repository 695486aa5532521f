package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"

	"rentgear-backend/internal/config"
	"rentgear-backend/internal/jobs"
	"rentgear-backend/internal/logger"
	"rentgear-backend/internal/metrics"
	"rentgear-backend/internal/repository/sqlite"
	"rentgear-backend/internal/scheduler"
	"rentgear-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'daily-summary')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentGear cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	db, err := sql.Open("sqlite3", cfg.GetDatabaseDSN())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := sqlite.NewStore(db)

	// Initialize Metrics (notification counters)
	metrics.Register()

	// Initialize Notification Channels
	var notifier service.Notifier
	if cfg.Telegram.Enabled {
		notifier, err = service.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Error("Failed to initialize telegram notifier", "error", err)
			log.Fatalf("Failed to initialize telegram notifier: %v", err)
		}
	}

	var emailNotifier service.Notifier
	if cfg.Email.Enabled {
		emailNotifier = service.NewEmailNotifier(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName, cfg.Email.To)
	}

	// Initialize Services
	reportSvc := service.NewReportService(store.RentalRepository, store.ExpenseRepository)

	jobServices := &jobs.Services{
		Reports:  reportSvc,
		Notifier: notifier,
		Email:    emailNotifier,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "daily-summary":
		jobRunner.SendDailySummary()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - daily-summary\n")
		os.Exit(1)
	}
}
