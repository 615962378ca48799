package models

import (
	"time"

	"gorm.io/gorm"
)

type EnrollmentKind string

const (
	KindPlan    EnrollmentKind = "PLAN"
	KindRoutine EnrollmentKind = "ROUTINE"
)

type EnrollmentStatus string

const (
	StatusActive    EnrollmentStatus = "ACTIVE"
	StatusPaused    EnrollmentStatus = "PAUSED"
	StatusCompleted EnrollmentStatus = "COMPLETED"
	StatusCancelled EnrollmentStatus = "CANCELLED"
)

// Terminal reports whether no further transitions are allowed from s.
func (s EnrollmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Enrollment is one user × plan-or-routine assignment. The unit of progress is
// a day for PLAN and a week for ROUTINE. Rows are never physically deleted;
// COMPLETED and CANCELLED are terminal states.
type Enrollment struct {
	gorm.Model
	UserID      uint             `gorm:"index;not null"`
	TargetID    uint             `gorm:"index;not null"` // plan or routine id, per Kind
	Kind        EnrollmentKind   `gorm:"size:10;not null"`
	StartDate   time.Time        `gorm:"not null"` // calendar date, midnight UTC
	EndDate     time.Time        `gorm:"not null"` // end-inclusive
	CurrentUnit int              `gorm:"not null;default:1"`
	TotalUnits  int              `gorm:"not null"` // copied from the target at activation
	Status      EnrollmentStatus `gorm:"size:10;index;not null"`
	Notes       string           `gorm:"type:text"`
}
