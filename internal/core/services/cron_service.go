package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"lps-admin/internal/pkg/logger"
)

const purgeTimeout = 30 * time.Second

// SessionPurger removes expired and revoked sessions
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron   *cron.Cron
	purger SessionPurger
	spec   string
}

// NewCronService creates a cron service purging sessions on spec
func NewCronService(purger SessionPurger, spec string) *CronService {
	return &CronService{
		cron:   cron.New(),
		purger: purger,
		spec:   spec,
	}
}

// Start registers the jobs and starts the scheduler
func (s *CronService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.PurgeSessions); err != nil {
		return err
	}
	s.cron.Start()
	logger.Infof("⏰ Cron started: session purge at %q", s.spec)
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("⏰ Cron stopped")
}

// PurgeSessions deletes expired and revoked sessions once
func (s *CronService) PurgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := s.purger.PurgeExpired(ctx)
	if err != nil {
		logger.Errorf("❌ Session purge failed: %v", err)
		return
	}
	if n > 0 {
		logger.Infof("🧹 Purged %d sessions", n)
	}
}
