package services

import (
	"context"
	"time"

	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
)

// OverlapValidator rejects enrollments whose date window intersects another
// live enrollment of the same kind for the same user. The rule is deliberately
// not scoped to the target: a user keeps at most one live plan and one live
// routine at a time.
type OverlapValidator struct {
	enrollments repository.EnrollmentRepository
}

func NewOverlapValidator(enrollments repository.EnrollmentRepository) *OverlapValidator {
	return &OverlapValidator{enrollments: enrollments}
}

// HasOverlap reports whether any ACTIVE or PAUSED enrollment of the kind
// intersects the closed interval [proposedStart, proposedEnd]. Touching at a
// single day counts.
func (v *OverlapValidator) HasOverlap(ctx context.Context, userID uint, kind models.EnrollmentKind, proposedStart, proposedEnd time.Time) (bool, error) {
	overlapping, err := v.enrollments.ListOverlapping(ctx, userID, kind, proposedStart, proposedEnd)
	if err != nil {
		return false, err
	}
	return len(overlapping) > 0, nil
}
