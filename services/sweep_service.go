package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
)

// SweepService periodically scans ACTIVE enrollments and completes those
// whose elapsed calendar units have reached their total. Re-running over an
// already-completed enrollment is a no-op, so the sweep is idempotent.
type SweepService struct {
	enrollments repository.EnrollmentRepository
	log         zerolog.Logger
	cron        *cron.Cron

	now func() time.Time
}

func NewSweepService(enrollments repository.EnrollmentRepository, log zerolog.Logger) *SweepService {
	return &SweepService{
		enrollments: enrollments,
		log:         log.With().Str("component", "enrollment_sweep").Logger(),
		now:         time.Now,
	}
}

// Start schedules the sweep on the given cron spec (e.g. "@hourly") and runs
// it until Stop.
func (s *SweepService) Start(schedule string) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(schedule, func() { s.Run(context.Background()) }); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Msg("enrollment sweep started")
	return nil
}

func (s *SweepService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run executes one sweep pass. A failure on one enrollment is logged and
// skipped; the pass continues with the rest.
func (s *SweepService) Run(ctx context.Context) {
	active, err := s.enrollments.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing active enrollments failed")
		return
	}

	today := dateOnly(s.now())
	completed := 0
	for i := range active {
		e := &active[i]
		if !s.windowElapsed(e, today) {
			continue
		}
		if err := s.complete(ctx, e.ID, today); err != nil {
			s.log.Error().Err(err).Uint("enrollment_id", e.ID).Msg("sweep completion failed, skipping")
			continue
		}
		completed++
	}

	if completed > 0 {
		s.log.Info().Int("scanned", len(active)).Int("completed", completed).Msg("sweep pass finished")
	}
}

// windowElapsed reports whether elapsed calendar time has carried the
// enrollment to (or past) its final unit.
func (s *SweepService) windowElapsed(e *models.Enrollment, today time.Time) bool {
	elapsedUnits := daysBetween(dateOnly(e.StartDate), today)/unitDays(e.Kind) + 1
	return elapsedUnits >= e.TotalUnits && !today.Before(dateOnly(e.EndDate))
}

func (s *SweepService) complete(ctx context.Context, enrollmentID uint, today time.Time) error {
	_, err := s.enrollments.Transition(ctx, enrollmentID, func(e *models.Enrollment) error {
		if e.Status != models.StatusActive {
			// A concurrent user action got there first; nothing to do.
			return nil
		}
		e.CurrentUnit = e.TotalUnits
		e.Status = models.StatusCompleted
		return nil
	})
	return err
}
