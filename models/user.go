package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email      string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	FullName   string
	HeightCM   float64
	WeightKG   float64 // always stored in kilograms
	WeightUnit string  `gorm:"size:3;default:KG"` // "KG" | "LBS", display preference only
}
