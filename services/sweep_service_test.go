package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonelalz/nutritrack-api-sub000/models"
)

func newSweepFixture(today time.Time) (*SweepService, *fakeEnrollmentRepo) {
	repo := newFakeEnrollmentRepo()
	svc := NewSweepService(repo, zerolog.Nop())
	svc.now = func() time.Time { return today }
	return svc, repo
}

func seedEnrollment(repo *fakeEnrollmentRepo, kind models.EnrollmentKind, start time.Time, totalUnits int, status models.EnrollmentStatus) uint {
	e := &models.Enrollment{
		UserID:      7,
		TargetID:    1,
		Kind:        kind,
		StartDate:   start,
		EndDate:     scheduledEnd(kind, start, totalUnits),
		CurrentUnit: 1,
		TotalUnits:  totalUnits,
		Status:      status,
	}
	_ = repo.Create(context.Background(), e)
	return e.ID
}

func TestSweepCompletesElapsedEnrollments(t *testing.T) {
	today := date(2026, time.June, 1)
	svc, repo := newSweepFixture(today)

	// 7-day plan that started 10 days ago: window has elapsed
	elapsedID := seedEnrollment(repo, models.KindPlan, date(2026, time.May, 22), 7, models.StatusActive)
	// 30-day plan started 5 days ago: still running
	runningID := seedEnrollment(repo, models.KindPlan, date(2026, time.May, 27), 30, models.StatusActive)
	// 4-week routine that started 5 weeks ago: elapsed
	routineID := seedEnrollment(repo, models.KindRoutine, date(2026, time.April, 20), 4, models.StatusActive)

	svc.Run(context.Background())

	done, err := repo.FindByID(context.Background(), elapsedID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, done.Status)
	assert.Equal(t, done.TotalUnits, done.CurrentUnit)

	running, err := repo.FindByID(context.Background(), runningID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, running.Status)
	assert.Equal(t, 1, running.CurrentUnit)

	routine, err := repo.FindByID(context.Background(), routineID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, routine.Status)
}

func TestSweepIsIdempotent(t *testing.T) {
	today := date(2026, time.June, 1)
	svc, repo := newSweepFixture(today)
	id := seedEnrollment(repo, models.KindPlan, date(2026, time.May, 1), 7, models.StatusActive)

	svc.Run(context.Background())
	svc.Run(context.Background())

	e, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, e.Status)
}

func TestSweepSkipsPausedEnrollments(t *testing.T) {
	today := date(2026, time.June, 1)
	svc, repo := newSweepFixture(today)
	id := seedEnrollment(repo, models.KindPlan, date(2026, time.May, 1), 7, models.StatusPaused)

	svc.Run(context.Background())

	e, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaused, e.Status)
}

func TestSweepContinuesPastRowFailures(t *testing.T) {
	today := date(2026, time.June, 1)
	svc, repo := newSweepFixture(today)

	brokenID := seedEnrollment(repo, models.KindPlan, date(2026, time.May, 1), 7, models.StatusActive)
	okID := seedEnrollment(repo, models.KindPlan, date(2026, time.May, 10), 7, models.StatusActive)
	repo.transitionErr[brokenID] = errors.New("row lock timeout")

	svc.Run(context.Background())

	ok, err := repo.FindByID(context.Background(), okID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, ok.Status)

	broken, err := repo.FindByID(context.Background(), brokenID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, broken.Status)
}
