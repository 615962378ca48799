package models

import (
	"gorm.io/gorm"
)

// Routine is a catalog workout routine spanning DurationWeeks calendar weeks.
type Routine struct {
	gorm.Model
	Name          string `gorm:"uniqueIndex;not null"`
	Description   string `gorm:"type:text"`
	DurationWeeks int    `gorm:"not null"`
	Enabled       bool   `gorm:"default:true"`
	Exercises     []RoutineExercise
}

type RoutineExercise struct {
	gorm.Model
	RoutineID  uint `gorm:"index;not null"`
	ExerciseID uint `gorm:"index;not null"`
	Exercise   Exercise
	DayOfWeek  int // 1 = Monday … 7 = Sunday
	Sets       int
	Reps       int
}
