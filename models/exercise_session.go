package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExerciseSession is one logged workout session. CaloriesBurned is the
// snapshot computed at log time from the exercise's catalog estimate.
type ExerciseSession struct {
	gorm.Model
	UserID         uint `gorm:"index;not null"`
	ExerciseID     uint `gorm:"index;not null"`
	Exercise       Exercise
	DurationMins   int             `gorm:"not null"`
	CaloriesBurned decimal.Decimal `gorm:"type:numeric(10,2)"`
	PerformedAt    time.Time       `gorm:"index;not null"`
}
