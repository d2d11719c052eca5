package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Rhea-16/scholarLink/internal/models"
	"github.com/Rhea-16/scholarLink/pkg/jobs"
)

// JobTypeReminderDue tags reminder notification jobs.
const JobTypeReminderDue = "reminder.due"

type dueReminderRepository interface {
	ListDueReminders(ctx context.Context, asOf time.Time, limit int) ([]models.Reminder, error)
	MarkReminderNotified(ctx context.Context, reminderID string, at time.Time) error
}

type jobEnqueuer interface {
	TryEnqueue(job jobs.Job) bool
}

// ReminderService finds due reminders and dispatches them through a job queue.
// A reminder stays in flight from enqueue until its job succeeds or is dead
// lettered, so overlapping sweeps never enqueue it twice.
type ReminderService struct {
	repo      dueReminderRepository
	metrics   *MetricsService
	logger    *zap.Logger
	batchSize int
	now       func() time.Time

	mu       sync.RWMutex
	queue    jobEnqueuer
	inFlight sync.Map
}

// NewReminderService constructs the service. UseQueue must be called before Sweep.
func NewReminderService(repo dueReminderRepository, metrics *MetricsService, logger *zap.Logger) *ReminderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderService{repo: repo, metrics: metrics, logger: logger, batchSize: 100, now: time.Now}
}

// UseQueue sets the queue that Sweep feeds. The queue's handler should be Handle.
func (s *ReminderService) UseQueue(queue jobEnqueuer) {
	s.mu.Lock()
	s.queue = queue
	s.mu.Unlock()
}

// Sweep enqueues every due, open, un-notified reminder and returns how many were queued.
func (s *ReminderService) Sweep(ctx context.Context) (int, error) {
	s.mu.RLock()
	queue := s.queue
	s.mu.RUnlock()
	if queue == nil {
		return 0, fmt.Errorf("reminder queue not configured")
	}

	due, err := s.repo.ListDueReminders(ctx, s.now().UTC(), s.batchSize)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, reminder := range due {
		if _, busy := s.inFlight.LoadOrStore(reminder.ID, struct{}{}); busy {
			continue
		}
		job := jobs.Job{ID: reminder.ID, Type: JobTypeReminderDue, Payload: reminder}
		if !queue.TryEnqueue(job) {
			s.inFlight.Delete(reminder.ID)
			s.logger.Warn("reminder queue full, deferring to next sweep", zap.Int("remaining", len(due)-queued))
			break
		}
		queued++
	}
	if queued > 0 {
		s.logger.Info("reminders queued", zap.Int("count", queued))
	}
	return queued, nil
}

// Handle is the queue handler for reminder jobs.
func (s *ReminderService) Handle(ctx context.Context, job jobs.Job) error {
	reminder, ok := job.Payload.(models.Reminder)
	if !ok {
		s.inFlight.Delete(job.ID)
		return fmt.Errorf("unexpected payload %T for job %s", job.Payload, job.ID)
	}

	if err := s.repo.MarkReminderNotified(ctx, reminder.ID, s.now().UTC()); err != nil {
		return err
	}
	s.logger.Info("reminder due",
		zap.String("reminder_id", reminder.ID),
		zap.String("user_id", reminder.UserID),
		zap.String("scholarship_id", reminder.ScholarshipID),
		zap.String("text", reminder.Text),
	)
	s.inFlight.Delete(reminder.ID)
	s.metrics.ObserveReminder(nil)
	return nil
}

// DeadLetter releases a reminder whose job exhausted its retries so a later
// sweep can try again.
func (s *ReminderService) DeadLetter(job jobs.Job, err error) {
	s.inFlight.Delete(job.ID)
	s.metrics.ObserveReminder(err)
	s.logger.Error("reminder dispatch failed", zap.String("reminder_id", job.ID), zap.Error(err))
}
