package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newEnrollmentFixture wires the service against in-memory fakes with a
// frozen clock.
func newEnrollmentFixture(today time.Time) (*EnrollmentService, *fakeEnrollmentRepo, *fakeTargetReader) {
	repo := newFakeEnrollmentRepo()
	targets := newFakeTargetReader()
	svc := NewEnrollmentService(repo, targets, NewOverlapValidator(repo))
	svc.now = func() time.Time { return today }
	return svc, repo, targets
}

func TestActivate(t *testing.T) {
	ctx := context.Background()
	today := date(2026, time.March, 2)

	t.Run("plan window is end-inclusive in days", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)

		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "cutting phase")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", view.StartDate)
		assert.Equal(t, "2026-03-31", view.EndDate) // start + 29 days
		assert.Equal(t, 1, view.CurrentUnit)
		assert.Equal(t, 30, view.TotalUnits)
		assert.Equal(t, models.StatusActive, view.Status)
		assert.Equal(t, "3.33", view.Progress)
	})

	t.Run("routine window is end-inclusive in weeks", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindRoutine, 5, 8, true)

		view, err := svc.Activate(ctx, 7, models.KindRoutine, 5, nil, "")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", view.StartDate)
		assert.Equal(t, "2026-04-20", view.EndDate) // start + 7 weeks
	})

	t.Run("explicit start date is respected", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 7, true)

		start := date(2026, time.April, 1)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, &start, "")
		require.NoError(t, err)
		assert.Equal(t, "2026-04-01", view.StartDate)
		assert.Equal(t, "2026-04-07", view.EndDate)
	})

	t.Run("unknown target", func(t *testing.T) {
		svc, _, _ := newEnrollmentFixture(today)
		_, err := svc.Activate(ctx, 7, models.KindPlan, 99, nil, "")
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "TARGET_NOT_FOUND", appErr.Code)
	})

	t.Run("disabled target", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, false)
		_, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "TARGET_DISABLED", appErr.Code)
	})

	t.Run("overlap is rejected per kind, not per target", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		targets.add(models.KindPlan, 2, 14, true)
		targets.add(models.KindRoutine, 3, 8, true)

		_, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)

		// different plan, same kind, overlapping window
		_, err = svc.Activate(ctx, 7, models.KindPlan, 2, nil, "")
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "OVERLAPPING_ENROLLMENT", appErr.Code)

		// a routine at the same time is fine
		_, err = svc.Activate(ctx, 7, models.KindRoutine, 3, nil, "")
		assert.NoError(t, err)
	})

	t.Run("touching at a single day counts as overlap", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 7, true)
		targets.add(models.KindPlan, 2, 7, true)

		_, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)

		// starts exactly on the first enrollment's end date
		start := date(2026, time.March, 8)
		_, err = svc.Activate(ctx, 7, models.KindPlan, 2, &start, "")
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "OVERLAPPING_ENROLLMENT", appErr.Code)
	})

	t.Run("a different user is unaffected", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)

		_, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)
		_, err = svc.Activate(ctx, 8, models.KindPlan, 1, nil, "")
		assert.NoError(t, err)
	})
}

func TestPauseResume(t *testing.T) {
	ctx := context.Background()
	today := date(2026, time.March, 2)

	activate := func(t *testing.T, svc *EnrollmentService, targets *fakeTargetReader) *EnrollmentView {
		t.Helper()
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)
		return view
	}

	t.Run("pause then resume the same day leaves the end date unchanged", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		view := activate(t, svc, targets)

		paused, err := svc.Pause(ctx, 7, view.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPaused, paused.Status)
		assert.Equal(t, view.EndDate, paused.EndDate)

		resumed, err := svc.Resume(ctx, 7, view.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusActive, resumed.Status)
		assert.Equal(t, view.EndDate, resumed.EndDate)
	})

	t.Run("resume extends the end date by days elapsed since start", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		view := activate(t, svc, targets)

		_, err := svc.Pause(ctx, 7, view.ID)
		require.NoError(t, err)

		// ten days later
		svc.now = func() time.Time { return date(2026, time.March, 12) }
		resumed, err := svc.Resume(ctx, 7, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "2026-04-10", resumed.EndDate) // 2026-03-31 + 10 days
	})

	t.Run("pause requires ACTIVE", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		view := activate(t, svc, targets)

		_, err := svc.Pause(ctx, 7, view.ID)
		require.NoError(t, err)
		_, err = svc.Pause(ctx, 7, view.ID)
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "INVALID_TRANSITION", appErr.Code)
	})

	t.Run("resume requires PAUSED", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		view := activate(t, svc, targets)

		_, err := svc.Resume(ctx, 7, view.ID)
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "INVALID_TRANSITION", appErr.Code)
	})
}

func TestCompleteAndCancel(t *testing.T) {
	ctx := context.Background()
	today := date(2026, time.March, 2)

	t.Run("complete sets end date to today", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)

		svc.now = func() time.Time { return date(2026, time.March, 10) }
		done, err := svc.Complete(ctx, 7, view.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, done.Status)
		assert.Equal(t, "2026-03-10", done.EndDate)
		assert.Equal(t, "100.00", done.Progress)
	})

	t.Run("cancel works from PAUSED too", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)
		_, err = svc.Pause(ctx, 7, view.ID)
		require.NoError(t, err)

		cancelled, err := svc.Cancel(ctx, 7, view.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, cancelled.Status)
		assert.Equal(t, "2026-03-02", cancelled.EndDate)
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, 7, view.ID)
		require.NoError(t, err)

		for name, op := range map[string]func(context.Context, uint, uint) (*EnrollmentView, error){
			"pause":    svc.Pause,
			"complete": svc.Complete,
			"cancel":   svc.Cancel,
			"advance":  svc.AdvanceUnit,
		} {
			_, err := op(ctx, 7, view.ID)
			appErr := apperrors.As(err)
			require.NotNil(t, appErr, "%s should fail", name)
			assert.Equal(t, "INVALID_TRANSITION", appErr.Code, "%s", name)
		}
	})

	t.Run("another user cannot touch the enrollment", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)

		_, err = svc.Cancel(ctx, 8, view.ID)
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "OWNERSHIP_MISMATCH", appErr.Code)
	})
}

func TestAdvanceUnit(t *testing.T) {
	ctx := context.Background()
	today := date(2026, time.March, 2)

	t.Run("increments the current unit", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)

		advanced, err := svc.AdvanceUnit(ctx, 7, view.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, advanced.CurrentUnit)
		assert.Equal(t, models.StatusActive, advanced.Status)
	})

	t.Run("reaching the final unit completes in the same call", func(t *testing.T) {
		svc, repo, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 3, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)

		// walk to totalUnits-1
		advanced, err := svc.AdvanceUnit(ctx, 7, view.ID)
		require.NoError(t, err)
		require.Equal(t, 2, advanced.CurrentUnit)
		require.Equal(t, models.StatusActive, advanced.Status)

		final, err := svc.AdvanceUnit(ctx, 7, view.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, final.CurrentUnit)
		assert.Equal(t, models.StatusCompleted, final.Status)
		assert.Equal(t, "100.00", final.Progress)

		// and a further advance is an invalid transition
		_, err = svc.AdvanceUnit(ctx, 7, view.ID)
		appErr := apperrors.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "INVALID_TRANSITION", appErr.Code)

		stored, err := repo.FindByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, stored.Status)
	})
}

func TestQueriesAndPatch(t *testing.T) {
	ctx := context.Background()
	today := date(2026, time.March, 2)

	t.Run("get active returns the live enrollment per kind", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		targets.add(models.KindRoutine, 2, 8, true)

		plan, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)
		_, err = svc.Activate(ctx, 7, models.KindRoutine, 2, nil, "")
		require.NoError(t, err)

		got, err := svc.GetActive(ctx, 7, models.KindPlan)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, plan.ID, got.ID)

		none, err := svc.GetActive(ctx, 99, models.KindPlan)
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("list all includes terminal enrollments", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "")
		require.NoError(t, err)
		_, err = svc.Cancel(ctx, 7, view.ID)
		require.NoError(t, err)

		all, err := svc.ListAll(ctx, 7)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, models.StatusCancelled, all[0].Status)
	})

	t.Run("nil patch fields leave values unchanged", func(t *testing.T) {
		svc, _, targets := newEnrollmentFixture(today)
		targets.add(models.KindPlan, 1, 30, true)
		view, err := svc.Activate(ctx, 7, models.KindPlan, 1, nil, "original")
		require.NoError(t, err)

		unchanged, err := svc.UpdateNotes(ctx, 7, view.ID, EnrollmentPatch{})
		require.NoError(t, err)
		assert.Equal(t, "original", unchanged.Notes)

		notes := "updated"
		patched, err := svc.UpdateNotes(ctx, 7, view.ID, EnrollmentPatch{Notes: &notes})
		require.NoError(t, err)
		assert.Equal(t, "updated", patched.Notes)
	})
}
