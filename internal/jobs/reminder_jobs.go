package jobs

import (
	"context"
	"fmt"
	"time"
)

const jobTimeout = 5 * time.Minute

// SendTaskDueReminders publishes a notification for every open task due
// within the next 24 hours.
func (jr *JobRunner) SendTaskDueReminders() {
	jr.runWithRecovery("SendTaskDueReminders", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		tasks, err := jr.taskRepo.ListDueWithin(ctx, 24)
		if err != nil {
			jr.log.Error("Failed to list due tasks", "error", err)
			return
		}

		for _, t := range tasks {
			jr.notifier.Publish("task", "Task due soon",
				fmt.Sprintf("%q is due on %s", t.Title, t.DueOn.Format("2006-01-02 15:04")))
		}
		jr.log.Info("Task due reminders published", "count", len(tasks))
	})
}

// LaunchScheduledCampaigns launches every scheduled campaign whose start
// date has arrived.
func (jr *JobRunner) LaunchScheduledCampaigns() {
	jr.runWithRecovery("LaunchScheduledCampaigns", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		campaigns, err := jr.campaignRepo.ListDueForLaunch(ctx)
		if err != nil {
			jr.log.Error("Failed to list launchable campaigns", "error", err)
			return
		}

		launched := 0
		for _, c := range campaigns {
			if _, err := jr.campaignSvc.LaunchCampaign(ctx, c.ID); err != nil {
				jr.log.Error("Failed to launch campaign", "campaign_id", c.ID, "error", err)
				continue
			}
			launched++
		}
		jr.log.Info("Scheduled campaigns processed", "due", len(campaigns), "launched", launched)
	})
}
