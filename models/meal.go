package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// One catalog Meal (breakfast/lunch/…), composed of recipe lines.
type Meal struct {
	gorm.Model
	Name  string `gorm:"uniqueIndex;not null"`
	Type  string `gorm:"size:20"` // "BREAKFAST"|"LUNCH"|"DINNER"|"SNACK"
	Lines []RecipeLine
}

// RecipeLine ties a quantity of an ingredient into a meal.
type RecipeLine struct {
	gorm.Model
	MealID        uint `gorm:"index;not null"`
	IngredientID  uint `gorm:"index;not null"`
	Ingredient    Ingredient
	QuantityGrams decimal.Decimal `gorm:"type:numeric(10,2)"`
}
