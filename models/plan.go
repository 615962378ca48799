package models

import (
	"gorm.io/gorm"
)

// NutritionPlan is a catalog plan spanning DurationDays calendar days.
type NutritionPlan struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null"`
	Description  string `gorm:"type:text"`
	DurationDays int    `gorm:"not null"`
	Enabled      bool   `gorm:"default:true"`
	Days         []PlanDay
}

// PlanDay groups the meals assigned to one day of a plan. Days with no meals
// simply have no PlanDay row.
type PlanDay struct {
	gorm.Model
	NutritionPlanID uint `gorm:"index;not null"`
	DayNumber       int  `gorm:"not null"` // 1-based
	Meals           []PlanMeal
}

type PlanMeal struct {
	gorm.Model
	PlanDayID uint `gorm:"index;not null"`
	MealID    uint `gorm:"index;not null"`
	Meal      Meal
}
