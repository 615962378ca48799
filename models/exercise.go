package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Exercise is a catalog entry. EstimatedCalories is the burn estimate for one
// session of ReferenceDurationMins minutes.
type Exercise struct {
	gorm.Model
	Name                  string          `gorm:"uniqueIndex;not null"`
	MuscleGroup           string          `gorm:"size:50"`
	EstimatedCalories     decimal.Decimal `gorm:"type:numeric(10,2)"`
	ReferenceDurationMins int
	Enabled               bool `gorm:"default:true"`
}
