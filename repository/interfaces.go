package repository

import (
	"context"
	"time"

	"github.com/leonelalz/nutritrack-api-sub000/models"
)

// Each interface exposes only what the services actually call, so the core
// stays testable with in-memory fakes.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

type IngredientRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Ingredient, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, ingredient *models.Ingredient) error
	List(ctx context.Context) ([]models.Ingredient, error)
}

type ExerciseRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Exercise, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, exercise *models.Exercise) error
	List(ctx context.Context) ([]models.Exercise, error)
}

type MealRepository interface {
	// FindByID loads the meal with its recipe lines and their ingredients.
	FindByID(ctx context.Context, id uint) (*models.Meal, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, meal *models.Meal) error
	List(ctx context.Context) ([]models.Meal, error)
}

type PlanRepository interface {
	// FindByID loads days, their meals and recipe lines down to ingredients.
	FindByID(ctx context.Context, id uint) (*models.NutritionPlan, error)
	FindDay(ctx context.Context, planDayID uint) (*models.PlanDay, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, plan *models.NutritionPlan) error
	List(ctx context.Context) ([]models.NutritionPlan, error)
}

type RoutineRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Routine, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, routine *models.Routine) error
	List(ctx context.Context) ([]models.Routine, error)
}

// TargetInfo is the slice of a plan or routine the enrollment core needs.
type TargetInfo struct {
	TotalUnits int
	Enabled    bool
}

// TargetReader resolves an enrollment target to its duration and enabled flag.
type TargetReader interface {
	GetTarget(ctx context.Context, kind models.EnrollmentKind, targetID uint) (*TargetInfo, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	FindByID(ctx context.Context, id uint) (*models.Enrollment, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Enrollment, error)
	// FindLive returns the single ACTIVE or PAUSED enrollment of the kind, or
	// nil when there is none.
	FindLive(ctx context.Context, userID uint, kind models.EnrollmentKind) (*models.Enrollment, error)
	// ListOverlapping returns ACTIVE/PAUSED enrollments of the kind whose
	// closed [start_date, end_date] interval intersects [start, end].
	ListOverlapping(ctx context.Context, userID uint, kind models.EnrollmentKind, start, end time.Time) ([]models.Enrollment, error)
	ListActive(ctx context.Context) ([]models.Enrollment, error)
	// Transition re-reads the row under a per-row lock, applies fn and saves,
	// all in one transaction. A concurrent sweep and a concurrent user action
	// therefore cannot both act on a stale status.
	Transition(ctx context.Context, id uint, fn func(*models.Enrollment) error) (*models.Enrollment, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.ExerciseSession) error
	ListRecent(ctx context.Context, userID uint, limit int) ([]models.ExerciseSession, error)
}
