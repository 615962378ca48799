package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonelalz/nutritrack-api-sub000/models"
)

func TestHasOverlap(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEnrollmentRepo()
	v := NewOverlapValidator(repo)

	existing := &models.Enrollment{
		UserID:      7,
		TargetID:    1,
		Kind:        models.KindPlan,
		StartDate:   date(2026, time.March, 10),
		EndDate:     date(2026, time.March, 20),
		CurrentUnit: 1,
		TotalUnits:  11,
		Status:      models.StatusActive,
	}
	require.NoError(t, repo.Create(ctx, existing))

	tests := []struct {
		name       string
		userID     uint
		kind       models.EnrollmentKind
		start, end time.Time
		want       bool
	}{
		{"inside the window", 7, models.KindPlan, date(2026, time.March, 12), date(2026, time.March, 15), true},
		{"straddles the start", 7, models.KindPlan, date(2026, time.March, 1), date(2026, time.March, 10), true},
		{"touches the end by one day", 7, models.KindPlan, date(2026, time.March, 20), date(2026, time.March, 25), true},
		{"entirely before", 7, models.KindPlan, date(2026, time.March, 1), date(2026, time.March, 9), false},
		{"entirely after", 7, models.KindPlan, date(2026, time.March, 21), date(2026, time.March, 30), false},
		{"other kind is independent", 7, models.KindRoutine, date(2026, time.March, 12), date(2026, time.March, 15), false},
		{"other user is independent", 8, models.KindPlan, date(2026, time.March, 12), date(2026, time.March, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.HasOverlap(ctx, tt.userID, tt.kind, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasOverlapIgnoresTerminalEnrollments(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEnrollmentRepo()
	v := NewOverlapValidator(repo)

	cancelled := &models.Enrollment{
		UserID:    7,
		Kind:      models.KindPlan,
		StartDate: date(2026, time.March, 10),
		EndDate:   date(2026, time.March, 20),
		Status:    models.StatusCancelled,
	}
	require.NoError(t, repo.Create(ctx, cancelled))

	got, err := v.HasOverlap(ctx, 7, models.KindPlan, date(2026, time.March, 12), date(2026, time.March, 15))
	require.NoError(t, err)
	assert.False(t, got)
}
