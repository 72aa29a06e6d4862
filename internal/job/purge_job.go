package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"session-task-api/internal/metrics"
	"session-task-api/internal/repository"
)

// PurgeJob permanently removes sessions that have stayed soft-deleted past
// the retention window. Scheduled via cron; Run satisfies cron.Job.
type PurgeJob struct {
	sessionRepo   repository.SessionRepository
	metrics       *metrics.Metrics
	logger        *zap.Logger
	retentionDays int
}

// NewPurgeJob creates a new PurgeJob instance
func NewPurgeJob(
	sessionRepo repository.SessionRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
	retentionDays int,
) *PurgeJob {
	return &PurgeJob{
		sessionRepo:   sessionRepo,
		metrics:       m,
		logger:        logger,
		retentionDays: retentionDays,
	}
}

// Run executes the purge job.
// It finds sessions soft-deleted longer than the retention window and hard
// deletes them together with their participants and tasks.
func (j *PurgeJob) Run() {
	ctx := context.Background()

	if j.retentionDays <= 0 {
		return
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

	j.logger.Info("Starting purge job for expired soft-deleted sessions",
		zap.Time("cutoff", cutoff),
	)

	expired, err := j.sessionRepo.FindDeletedBefore(ctx, cutoff)
	if err != nil {
		j.logger.Error("Failed to find expired soft-deleted sessions",
			zap.Error(err),
		)
		return
	}

	if len(expired) == 0 {
		j.logger.Info("No expired soft-deleted sessions found")
		return
	}

	successCount := 0
	failCount := 0

	for _, session := range expired {
		if err := j.sessionRepo.HardDelete(ctx, session.ID); err != nil {
			j.logger.Error("Failed to purge session",
				zap.String("session_id", session.ID.String()),
				zap.Error(err),
			)
			failCount++
			continue
		}
		successCount++

		j.logger.Debug("Purged session",
			zap.String("session_id", session.ID.String()),
		)
	}

	if j.metrics != nil && successCount > 0 {
		j.metrics.AddSessionsPurged(successCount)
	}

	j.logger.Info("Purge job completed",
		zap.Int("total_expired", len(expired)),
		zap.Int("success", successCount),
		zap.Int("failed", failCount),
	)
}
