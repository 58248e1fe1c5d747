package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"crm-backend/internal/config"
	"crm-backend/internal/hub"
	"crm-backend/internal/jobs"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository/postgres"
	"crm-backend/internal/scheduler"
	"crm-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('task-due-reminders', 'launch-campaigns', 'all')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CRM job runner...", "log_level", cfg.Log.Level)

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

	store := postgres.NewStore(db)

	// The job runner gets its own hub instance; in a single-process
	// deployment these jobs run inside the server binary instead.
	notificationHub := hub.New()
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	campaignSvc := service.NewCampaignService(store.CampaignRepository, store.CustomerRepository, emailSvc, notificationHub)

	jobRunner := jobs.NewJobRunner(store.TaskRepository, store.CampaignRepository, campaignSvc, notificationHub, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "task-due-reminders":
			jobRunner.SendTaskDueReminders()
		case "launch-campaigns":
			jobRunner.LaunchScheduledCampaigns()
		case "all":
			jobRunner.RunAll()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
