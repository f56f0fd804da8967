package job

import (
	"context"
	"time"

	"github.com/maheshrc27/brandlab-api/internal/repository"
	"go.uber.org/zap"
)

const SessionCleanupSchedule = "@every 01h00m00s"

type SessionCleanupJob struct {
	sr     repository.SessionRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewSessionCleanupJob(sr repository.SessionRepository, logger *zap.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sr:     sr,
		logger: logger,
		now:    time.Now,
	}
}

// PurgeSessions drops sessions that expired or were signed out.
func (j *SessionCleanupJob) PurgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.sr.DeleteExpired(ctx, j.now())
	if err != nil {
		j.logger.Error("Session cleanup failed", zap.Error(err))
		return
	}
	if n > 0 {
		j.logger.Info("Purged stale sessions", zap.Int64("count", n))
	}
}
