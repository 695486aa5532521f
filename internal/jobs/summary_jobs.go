package jobs

import (
	"context"
	"time"

	"rentgear-backend/internal/logger"
)

// SendDailySummary builds the operator digest for today and pushes it to the
// configured notification channels. A failed channel only logs: the next run
// covers the same data again.
func (jr *JobRunner) SendDailySummary() {
	jr.runWithRecovery("SendDailySummary", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		now := time.Now().In(jr.config.Location())
		text, err := jr.services.Reports.DailyDigest(ctx, now)
		if err != nil {
			logger.Error("Failed to build daily summary", "error", err)
			return
		}

		if jr.services.Notifier != nil {
			if err := jr.services.Notifier.Send(ctx, text); err != nil {
				logger.Error("Failed to send daily summary", "channel", "telegram", "error", err)
			}
		}
		if jr.services.Email != nil {
			if err := jr.services.Email.Send(ctx, text); err != nil {
				logger.Error("Failed to send daily summary", "channel", "email", "error", err)
			}
		}
		if jr.services.Notifier == nil && jr.services.Email == nil {
			logger.Warn("Daily summary built but no notification channel is configured")
		}
	})
}
