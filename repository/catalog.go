package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
)

type GormIngredientRepository struct{ db *gorm.DB }

func NewIngredientRepository(db *gorm.DB) *GormIngredientRepository {
	return &GormIngredientRepository{db: db}
}

func (r *GormIngredientRepository) FindByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := r.db.WithContext(ctx).First(&ing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("ingredient", id)
		}
		return nil, err
	}
	return &ing, nil
}

func (r *GormIngredientRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *GormIngredientRepository) Create(ctx context.Context, ing *models.Ingredient) error {
	return r.db.WithContext(ctx).Create(ing).Error
}

func (r *GormIngredientRepository) List(ctx context.Context) ([]models.Ingredient, error) {
	var list []models.Ingredient
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

type GormExerciseRepository struct{ db *gorm.DB }

func NewExerciseRepository(db *gorm.DB) *GormExerciseRepository {
	return &GormExerciseRepository{db: db}
}

func (r *GormExerciseRepository) FindByID(ctx context.Context, id uint) (*models.Exercise, error) {
	var ex models.Exercise
	if err := r.db.WithContext(ctx).First(&ex, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("exercise", id)
		}
		return nil, err
	}
	return &ex, nil
}

func (r *GormExerciseRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Exercise{}).
		Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *GormExerciseRepository) Create(ctx context.Context, ex *models.Exercise) error {
	return r.db.WithContext(ctx).Create(ex).Error
}

func (r *GormExerciseRepository) List(ctx context.Context) ([]models.Exercise, error) {
	var list []models.Exercise
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

type GormMealRepository struct{ db *gorm.DB }

func NewMealRepository(db *gorm.DB) *GormMealRepository {
	return &GormMealRepository{db: db}
}

func (r *GormMealRepository) FindByID(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	err := r.db.WithContext(ctx).
		Preload("Lines.Ingredient").
		First(&meal, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("meal", id)
		}
		return nil, err
	}
	return &meal, nil
}

func (r *GormMealRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Meal{}).
		Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *GormMealRepository) Create(ctx context.Context, meal *models.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *GormMealRepository) List(ctx context.Context) ([]models.Meal, error) {
	var list []models.Meal
	err := r.db.WithContext(ctx).Preload("Lines.Ingredient").Order("name ASC").Find(&list).Error
	return list, err
}

type GormPlanRepository struct{ db *gorm.DB }

func NewPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

func (r *GormPlanRepository) FindByID(ctx context.Context, id uint) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	err := r.db.WithContext(ctx).
		Preload("Days.Meals.Meal.Lines.Ingredient").
		First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("plan", id)
		}
		return nil, err
	}
	return &plan, nil
}

func (r *GormPlanRepository) FindDay(ctx context.Context, planDayID uint) (*models.PlanDay, error) {
	var day models.PlanDay
	err := r.db.WithContext(ctx).
		Preload("Meals.Meal.Lines.Ingredient").
		First(&day, planDayID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("plan day", planDayID)
		}
		return nil, err
	}
	return &day, nil
}

func (r *GormPlanRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NutritionPlan{}).
		Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *GormPlanRepository) Create(ctx context.Context, plan *models.NutritionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *GormPlanRepository) List(ctx context.Context) ([]models.NutritionPlan, error) {
	var list []models.NutritionPlan
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

type GormRoutineRepository struct{ db *gorm.DB }

func NewRoutineRepository(db *gorm.DB) *GormRoutineRepository {
	return &GormRoutineRepository{db: db}
}

func (r *GormRoutineRepository) FindByID(ctx context.Context, id uint) (*models.Routine, error) {
	var routine models.Routine
	err := r.db.WithContext(ctx).
		Preload("Exercises.Exercise").
		First(&routine, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("routine", id)
		}
		return nil, err
	}
	return &routine, nil
}

func (r *GormRoutineRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Routine{}).
		Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *GormRoutineRepository) Create(ctx context.Context, routine *models.Routine) error {
	return r.db.WithContext(ctx).Create(routine).Error
}

func (r *GormRoutineRepository) List(ctx context.Context) ([]models.Routine, error) {
	var list []models.Routine
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

// GormTargetReader resolves enrollment targets without loading full plan or
// routine graphs.
type GormTargetReader struct{ db *gorm.DB }

func NewTargetReader(db *gorm.DB) *GormTargetReader {
	return &GormTargetReader{db: db}
}

func (r *GormTargetReader) GetTarget(ctx context.Context, kind models.EnrollmentKind, targetID uint) (*TargetInfo, error) {
	switch kind {
	case models.KindPlan:
		var plan models.NutritionPlan
		if err := r.db.WithContext(ctx).First(&plan, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.TargetNotFound(string(kind), targetID)
			}
			return nil, err
		}
		return &TargetInfo{TotalUnits: plan.DurationDays, Enabled: plan.Enabled}, nil
	case models.KindRoutine:
		var routine models.Routine
		if err := r.db.WithContext(ctx).First(&routine, targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.TargetNotFound(string(kind), targetID)
			}
			return nil, err
		}
		return &TargetInfo{TotalUnits: routine.DurationWeeks, Enabled: routine.Enabled}, nil
	default:
		return nil, apperrors.New(apperrors.TypeValidation, "INVALID_KIND", "unknown enrollment kind %q", kind)
	}
}
