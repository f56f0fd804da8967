package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/robfig/cron"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubSessions struct {
	cutoff time.Time
	n      int64
	err    error
}

func (s *stubSessions) Create(context.Context, *models.Session) error { return nil }
func (s *stubSessions) GetByID(context.Context, string) (*models.Session, error) {
	return nil, nil
}
func (s *stubSessions) Revoke(context.Context, string) (bool, error) { return false, nil }
func (s *stubSessions) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.cutoff = now
	return s.n, s.err
}

func TestPurgeSessions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubSessions{n: 3}

	job := NewSessionCleanupJob(stub, zap.New(core))
	job.now = func() time.Time { return fixed }
	job.PurgeSessions()

	assert.Equal(t, fixed, stub.cutoff)
	assert.Equal(t, 1, logs.FilterMessage("Purged stale sessions").Len())
}

func TestPurgeSessionsLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	job := NewSessionCleanupJob(&stubSessions{err: errors.New("db down")}, zap.New(core))

	job.PurgeSessions()

	assert.Equal(t, 1, logs.FilterMessage("Session cleanup failed").Len())
}

func TestScheduleParses(t *testing.T) {
	c := cron.New()
	assert.NoError(t, c.AddFunc(SessionCleanupSchedule, func() {}))
}
