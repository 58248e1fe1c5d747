package jobs

import (
	"log/slog"

	"crm-backend/internal/config"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	taskRepo     repository.TaskRepository
	campaignRepo repository.CampaignRepository
	campaignSvc  service.CampaignService
	notifier     service.Notifier
	config       *config.Config
	log          *slog.Logger
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(taskRepo repository.TaskRepository, campaignRepo repository.CampaignRepository, campaignSvc service.CampaignService, notifier service.Notifier, cfg *config.Config) *JobRunner {
	return &JobRunner{
		taskRepo:     taskRepo,
		campaignRepo: campaignRepo,
		campaignSvc:  campaignSvc,
		notifier:     notifier,
		config:       cfg,
		log:          logger.WithService("jobs"),
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("Starting job", "job", jobName)
	jobFunc()
	jr.log.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.SendTaskDueReminders()
	jr.LaunchScheduledCampaigns()
}
