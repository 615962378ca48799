package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ingredient is a catalog entry; nutrition facts are per 100 g.
type Ingredient struct {
	gorm.Model
	Name     string          `gorm:"uniqueIndex;not null"`
	Calories decimal.Decimal `gorm:"type:numeric(10,2)"` // kcal / 100 g
	Protein  decimal.Decimal `gorm:"type:numeric(10,2)"` // g / 100 g
	Fat      decimal.Decimal `gorm:"type:numeric(10,2)"` // g / 100 g
	Carbs    decimal.Decimal `gorm:"type:numeric(10,2)"` // g / 100 g
	Enabled  bool            `gorm:"default:true"`
}
