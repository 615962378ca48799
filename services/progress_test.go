package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonelalz/nutritrack-api-sub000/models"
)

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name          string
		current       int
		total         int
		status        models.EnrollmentStatus
		wantPct       string
		wantCompleted int
		wantRemaining int
	}{
		{"halfway through a 30 day plan", 15, 30, models.StatusActive, "50.00", 14, 16},
		{"first unit", 1, 30, models.StatusActive, "3.33", 0, 30},
		{"last unit still active", 30, 30, models.StatusActive, "100.00", 29, 1},
		{"paused keeps its percentage", 15, 30, models.StatusPaused, "50.00", 14, 16},
		{"completed is exactly 100 regardless of units", 7, 30, models.StatusCompleted, "100.00", 6, 24},
		{"uneven division", 1, 3, models.StatusActive, "33.33", 0, 3},
		{"two thirds rounds half up", 2, 3, models.StatusActive, "66.67", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &models.Enrollment{
				CurrentUnit: tt.current,
				TotalUnits:  tt.total,
				Status:      tt.status,
			}
			got := CalculateProgress(e)
			assert.Equal(t, tt.wantPct, got.Percentage.StringFixed(2))
			assert.Equal(t, tt.wantCompleted, got.CompletedUnits)
			assert.Equal(t, tt.wantRemaining, got.RemainingUnits)
		})
	}
}

func TestProgressMonotonicOverAdvance(t *testing.T) {
	e := &models.Enrollment{CurrentUnit: 1, TotalUnits: 10, Status: models.StatusActive}

	prev := CalculateProgress(e).Percentage
	for e.Status == models.StatusActive {
		e.CurrentUnit++
		if e.CurrentUnit >= e.TotalUnits {
			e.CurrentUnit = e.TotalUnits
			e.Status = models.StatusCompleted
		}
		cur := CalculateProgress(e).Percentage
		assert.True(t, cur.GreaterThanOrEqual(prev), "progress went from %s down to %s", prev, cur)
		prev = cur
	}
	assert.Equal(t, "100.00", prev.StringFixed(2))
}
