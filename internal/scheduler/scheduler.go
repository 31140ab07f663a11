// Package scheduler drives the periodic refresh of the mock fixture store.
package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Advancer is the part of the fixture store the scheduler drives
type Advancer interface {
	Advance()
}

// Scheduler manages the recurring fixture clock refresh job
type Scheduler struct {
	cron      *cron.Cron
	store     Advancer
	logger    *logrus.Logger
	mu        sync.RWMutex
	isRunning bool
	jobIDs    []cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(store Advancer, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		store:  store,
		logger: logger,
		jobIDs: make([]cron.EntryID, 0),
	}
}

// ScheduleRefresh schedules the fixture clock refresh at a fixed interval
func (s *Scheduler) ScheduleRefresh(intervalSeconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	if intervalSeconds < 1 {
		intervalSeconds = 1
	}

	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", intervalSeconds), s.store.Advance)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("interval_seconds", intervalSeconds).Info("Scheduled fixture refresh job")

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			if nextRun.IsZero() || entry.Next.Before(nextRun) {
				nextRun = entry.Next
			}
		}
	}

	return nextRun
}
