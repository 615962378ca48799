package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/leonelalz/nutritrack-api-sub000/models"
)

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Exercise{},
		&models.Meal{},
		&models.RecipeLine{},
		&models.NutritionPlan{},
		&models.PlanDay{},
		&models.PlanMeal{},
		&models.Routine{},
		&models.RoutineExercise{},
		&models.Enrollment{},
		&models.ExerciseSession{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// AutoMigrate cannot express an exclusion constraint. This closes the
	// check-then-create race on Activate: two concurrent activations of the
	// same kind with intersecting windows cannot both commit.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return nil, fmt.Errorf("create btree_gist extension: %w", err)
	}
	if err := db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'enrollments_no_overlap'
			) THEN
				ALTER TABLE enrollments
				ADD CONSTRAINT enrollments_no_overlap
				EXCLUDE USING gist (
					user_id WITH =,
					kind WITH =,
					daterange(start_date::date, end_date::date, '[]') WITH &&
				) WHERE (status IN ('ACTIVE', 'PAUSED'));
			END IF;
		END
		$$
	`).Error; err != nil {
		return nil, fmt.Errorf("create overlap constraint: %w", err)
	}

	return db, nil
}
