package services

import (
	"context"
	"time"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
)

const dateLayout = "2006-01-02"

// EnrollmentView mirrors the Enrollment row plus the derived progress fields.
type EnrollmentView struct {
	ID             uint                    `json:"id"`
	UserID         uint                    `json:"user_id"`
	TargetID       uint                    `json:"target_id"`
	Kind           models.EnrollmentKind   `json:"kind"`
	StartDate      string                  `json:"start_date"`
	EndDate        string                  `json:"end_date"`
	CurrentUnit    int                     `json:"current_unit"`
	TotalUnits     int                     `json:"total_units"`
	Status         models.EnrollmentStatus `json:"status"`
	Notes          string                  `json:"notes,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	Progress       string                  `json:"progress"`
	CompletedUnits int                     `json:"completed_units"`
	RemainingUnits int                     `json:"remaining_units"`
}

// EnrollmentPatch applies partial updates; nil means leave unchanged.
type EnrollmentPatch struct {
	Notes *string `json:"notes"`
}

// EnrollmentService owns the lifecycle state machine for plan and routine
// enrollments. All mutations run through the repository's per-row transaction
// so a user action and the sweep cannot both act on a stale status.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	targets     repository.TargetReader
	overlap     *OverlapValidator

	now func() time.Time
}

func NewEnrollmentService(enrollments repository.EnrollmentRepository, targets repository.TargetReader, overlap *OverlapValidator) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		targets:     targets,
		overlap:     overlap,
		now:         time.Now,
	}
}

// today is the current calendar date at midnight UTC; enrollment date
// arithmetic is whole-day only.
func (s *EnrollmentService) today() time.Time {
	return dateOnly(s.now())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// unitDays is the calendar length of one progress unit.
func unitDays(kind models.EnrollmentKind) int {
	if kind == models.KindRoutine {
		return 7
	}
	return 1
}

// scheduledEnd is the end-inclusive window end: start plus totalUnits-1 units.
func scheduledEnd(kind models.EnrollmentKind, start time.Time, totalUnits int) time.Time {
	return start.AddDate(0, 0, (totalUnits-1)*unitDays(kind))
}

// Activate enrolls the user into a plan or routine starting at startDate
// (today when nil). The target must exist and be enabled, and the window must
// not intersect any live enrollment of the same kind.
func (s *EnrollmentService) Activate(ctx context.Context, userID uint, kind models.EnrollmentKind, targetID uint, startDate *time.Time, notes string) (*EnrollmentView, error) {
	target, err := s.targets.GetTarget(ctx, kind, targetID)
	if err != nil {
		return nil, err
	}
	if !target.Enabled {
		return nil, apperrors.TargetDisabled(string(kind), targetID)
	}
	if target.TotalUnits <= 0 {
		return nil, apperrors.DivisionByZero("target has a non-positive duration")
	}

	start := s.today()
	if startDate != nil {
		start = dateOnly(*startDate)
	}
	end := scheduledEnd(kind, start, target.TotalUnits)

	conflict, err := s.overlap.HasOverlap(ctx, userID, kind, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, apperrors.OverlappingEnrollment(string(kind))
	}

	enrollment := &models.Enrollment{
		UserID:      userID,
		TargetID:    targetID,
		Kind:        kind,
		StartDate:   start,
		EndDate:     end,
		CurrentUnit: 1,
		TotalUnits:  target.TotalUnits,
		Status:      models.StatusActive,
		Notes:       notes,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return s.view(enrollment), nil
}

// Pause suspends an active enrollment. Dates are untouched.
func (s *EnrollmentService) Pause(ctx context.Context, userID, enrollmentID uint) (*EnrollmentView, error) {
	return s.transition(ctx, userID, enrollmentID, func(e *models.Enrollment) error {
		if e.Status != models.StatusActive {
			return apperrors.InvalidTransition(string(e.Status), "pause")
		}
		e.Status = models.StatusPaused
		return nil
	})
}

// Resume reactivates a paused enrollment and pushes the end date forward by
// the days elapsed since the start date, so the remaining units are retained.
// Measuring from the start rather than from the pause over-extends the window
// on every resume after the first; kept for compatibility with existing data.
func (s *EnrollmentService) Resume(ctx context.Context, userID, enrollmentID uint) (*EnrollmentView, error) {
	return s.transition(ctx, userID, enrollmentID, func(e *models.Enrollment) error {
		if e.Status != models.StatusPaused {
			return apperrors.InvalidTransition(string(e.Status), "resume")
		}
		elapsed := daysBetween(dateOnly(e.StartDate), s.today())
		if elapsed > 0 {
			e.EndDate = e.EndDate.AddDate(0, 0, elapsed)
		}
		e.Status = models.StatusActive
		return nil
	})
}

// Complete finishes the enrollment now; the end date becomes today.
func (s *EnrollmentService) Complete(ctx context.Context, userID, enrollmentID uint) (*EnrollmentView, error) {
	return s.transition(ctx, userID, enrollmentID, func(e *models.Enrollment) error {
		if e.Status.Terminal() {
			return apperrors.InvalidTransition(string(e.Status), "complete")
		}
		e.Status = models.StatusCompleted
		e.EndDate = s.today()
		return nil
	})
}

// Cancel abandons the enrollment now; the end date becomes today.
func (s *EnrollmentService) Cancel(ctx context.Context, userID, enrollmentID uint) (*EnrollmentView, error) {
	return s.transition(ctx, userID, enrollmentID, func(e *models.Enrollment) error {
		if e.Status.Terminal() {
			return apperrors.InvalidTransition(string(e.Status), "cancel")
		}
		e.Status = models.StatusCancelled
		e.EndDate = s.today()
		return nil
	})
}

// AdvanceUnit moves an active enrollment to the next day/week. Reaching the
// final unit completes the enrollment in the same call.
func (s *EnrollmentService) AdvanceUnit(ctx context.Context, userID, enrollmentID uint) (*EnrollmentView, error) {
	return s.transition(ctx, userID, enrollmentID, func(e *models.Enrollment) error {
		if e.Status != models.StatusActive {
			return apperrors.InvalidTransition(string(e.Status), "advance")
		}
		e.CurrentUnit++
		if e.CurrentUnit >= e.TotalUnits {
			e.CurrentUnit = e.TotalUnits
			e.Status = models.StatusCompleted
		}
		return nil
	})
}

// UpdateNotes applies a partial update; nil patch fields are left unchanged.
// Terminal enrollments stay editable: annotating a finished plan is fine.
func (s *EnrollmentService) UpdateNotes(ctx context.Context, userID, enrollmentID uint, patch EnrollmentPatch) (*EnrollmentView, error) {
	return s.transition(ctx, userID, enrollmentID, func(e *models.Enrollment) error {
		if patch.Notes != nil {
			e.Notes = *patch.Notes
		}
		return nil
	})
}

// GetActive returns the live (ACTIVE or PAUSED) enrollment of the kind, or
// nil when the user has none.
func (s *EnrollmentService) GetActive(ctx context.Context, userID uint, kind models.EnrollmentKind) (*EnrollmentView, error) {
	e, err := s.enrollments.FindLive(ctx, userID, kind)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return s.view(e), nil
}

// ListAll returns every enrollment of the user, newest first.
func (s *EnrollmentService) ListAll(ctx context.Context, userID uint) ([]EnrollmentView, error) {
	list, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]EnrollmentView, 0, len(list))
	for i := range list {
		views = append(views, *s.view(&list[i]))
	}
	return views, nil
}

func (s *EnrollmentService) transition(ctx context.Context, userID, enrollmentID uint, fn func(*models.Enrollment) error) (*EnrollmentView, error) {
	e, err := s.enrollments.Transition(ctx, enrollmentID, func(e *models.Enrollment) error {
		if e.UserID != userID {
			return apperrors.OwnershipMismatch(e.ID)
		}
		return fn(e)
	})
	if err != nil {
		return nil, err
	}
	return s.view(e), nil
}

func (s *EnrollmentService) view(e *models.Enrollment) *EnrollmentView {
	p := CalculateProgress(e)
	return &EnrollmentView{
		ID:             e.ID,
		UserID:         e.UserID,
		TargetID:       e.TargetID,
		Kind:           e.Kind,
		StartDate:      e.StartDate.Format(dateLayout),
		EndDate:        e.EndDate.Format(dateLayout),
		CurrentUnit:    e.CurrentUnit,
		TotalUnits:     e.TotalUnits,
		Status:         e.Status,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		Progress:       p.Percentage.StringFixed(2),
		CompletedUnits: p.CompletedUnits,
		RemainingUnits: p.RemainingUnits,
	}
}
