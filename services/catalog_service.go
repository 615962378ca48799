package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
)

// CatalogService is the thin admin surface over the catalog tables: create
// with a uniqueness check, read back. The enrollment and nutrition cores only
// ever read from it.
type CatalogService struct {
	ingredients repository.IngredientRepository
	exercises   repository.ExerciseRepository
	meals       repository.MealRepository
	plans       repository.PlanRepository
	routines    repository.RoutineRepository
}

func NewCatalogService(
	ingredients repository.IngredientRepository,
	exercises repository.ExerciseRepository,
	meals repository.MealRepository,
	plans repository.PlanRepository,
	routines repository.RoutineRepository,
) *CatalogService {
	return &CatalogService{
		ingredients: ingredients,
		exercises:   exercises,
		meals:       meals,
		plans:       plans,
		routines:    routines,
	}
}

type IngredientInput struct {
	Name     string          `json:"name" binding:"required"`
	Calories decimal.Decimal `json:"calories"`
	Protein  decimal.Decimal `json:"protein"`
	Fat      decimal.Decimal `json:"fat"`
	Carbs    decimal.Decimal `json:"carbs"`
}

func (s *CatalogService) CreateIngredient(ctx context.Context, in IngredientInput) (*models.Ingredient, error) {
	exists, err := s.ingredients.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.DuplicateName("ingredient", in.Name)
	}
	ing := &models.Ingredient{
		Name:     in.Name,
		Calories: in.Calories,
		Protein:  in.Protein,
		Fat:      in.Fat,
		Carbs:    in.Carbs,
		Enabled:  true,
	}
	if err := s.ingredients.Create(ctx, ing); err != nil {
		return nil, err
	}
	return ing, nil
}

func (s *CatalogService) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.ingredients.List(ctx)
}

type ExerciseInput struct {
	Name                  string          `json:"name" binding:"required"`
	MuscleGroup           string          `json:"muscle_group"`
	EstimatedCalories     decimal.Decimal `json:"estimated_calories"`
	ReferenceDurationMins int             `json:"reference_duration_mins"`
}

func (s *CatalogService) CreateExercise(ctx context.Context, in ExerciseInput) (*models.Exercise, error) {
	exists, err := s.exercises.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.DuplicateName("exercise", in.Name)
	}
	ex := &models.Exercise{
		Name:                  in.Name,
		MuscleGroup:           in.MuscleGroup,
		EstimatedCalories:     in.EstimatedCalories,
		ReferenceDurationMins: in.ReferenceDurationMins,
		Enabled:               true,
	}
	if err := s.exercises.Create(ctx, ex); err != nil {
		return nil, err
	}
	return ex, nil
}

func (s *CatalogService) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	return s.exercises.List(ctx)
}

type RecipeLineInput struct {
	IngredientID  uint            `json:"ingredient_id" binding:"required"`
	QuantityGrams decimal.Decimal `json:"quantity_grams"`
}

type MealInput struct {
	Name  string            `json:"name" binding:"required"`
	Type  string            `json:"type"`
	Lines []RecipeLineInput `json:"lines"`
}

func (s *CatalogService) CreateMeal(ctx context.Context, in MealInput) (*models.Meal, error) {
	exists, err := s.meals.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.DuplicateName("meal", in.Name)
	}

	meal := &models.Meal{Name: in.Name, Type: in.Type}
	for _, line := range in.Lines {
		if _, err := s.ingredients.FindByID(ctx, line.IngredientID); err != nil {
			return nil, err
		}
		meal.Lines = append(meal.Lines, models.RecipeLine{
			IngredientID:  line.IngredientID,
			QuantityGrams: line.QuantityGrams,
		})
	}
	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, err
	}
	return s.meals.FindByID(ctx, meal.ID)
}

func (s *CatalogService) GetMeal(ctx context.Context, id uint) (*models.Meal, error) {
	return s.meals.FindByID(ctx, id)
}

func (s *CatalogService) ListMeals(ctx context.Context) ([]models.Meal, error) {
	return s.meals.List(ctx)
}

type PlanDayInput struct {
	DayNumber int    `json:"day_number" binding:"required"`
	MealIDs   []uint `json:"meal_ids"`
}

type PlanInput struct {
	Name         string         `json:"name" binding:"required"`
	Description  string         `json:"description"`
	DurationDays int            `json:"duration_days" binding:"required"`
	Days         []PlanDayInput `json:"days"`
}

func (s *CatalogService) CreatePlan(ctx context.Context, in PlanInput) (*models.NutritionPlan, error) {
	exists, err := s.plans.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.DuplicateName("plan", in.Name)
	}

	plan := &models.NutritionPlan{
		Name:         in.Name,
		Description:  in.Description,
		DurationDays: in.DurationDays,
		Enabled:      true,
	}
	for _, d := range in.Days {
		if d.DayNumber < 1 || d.DayNumber > in.DurationDays {
			return nil, apperrors.New(apperrors.TypeValidation, "INVALID_DAY",
				"day %d is outside the plan duration", d.DayNumber)
		}
		day := models.PlanDay{DayNumber: d.DayNumber}
		for _, mealID := range d.MealIDs {
			if _, err := s.meals.FindByID(ctx, mealID); err != nil {
				return nil, err
			}
			day.Meals = append(day.Meals, models.PlanMeal{MealID: mealID})
		}
		plan.Days = append(plan.Days, day)
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return s.plans.FindByID(ctx, plan.ID)
}

func (s *CatalogService) ListPlans(ctx context.Context) ([]models.NutritionPlan, error) {
	return s.plans.List(ctx)
}

type RoutineExerciseInput struct {
	ExerciseID uint `json:"exercise_id" binding:"required"`
	DayOfWeek  int  `json:"day_of_week"`
	Sets       int  `json:"sets"`
	Reps       int  `json:"reps"`
}

type RoutineInput struct {
	Name          string                 `json:"name" binding:"required"`
	Description   string                 `json:"description"`
	DurationWeeks int                    `json:"duration_weeks" binding:"required"`
	Exercises     []RoutineExerciseInput `json:"exercises"`
}

func (s *CatalogService) CreateRoutine(ctx context.Context, in RoutineInput) (*models.Routine, error) {
	exists, err := s.routines.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.DuplicateName("routine", in.Name)
	}

	routine := &models.Routine{
		Name:          in.Name,
		Description:   in.Description,
		DurationWeeks: in.DurationWeeks,
		Enabled:       true,
	}
	for _, e := range in.Exercises {
		if _, err := s.exercises.FindByID(ctx, e.ExerciseID); err != nil {
			return nil, err
		}
		routine.Exercises = append(routine.Exercises, models.RoutineExercise{
			ExerciseID: e.ExerciseID,
			DayOfWeek:  e.DayOfWeek,
			Sets:       e.Sets,
			Reps:       e.Reps,
		})
	}
	if err := s.routines.Create(ctx, routine); err != nil {
		return nil, err
	}
	return s.routines.FindByID(ctx, routine.ID)
}

func (s *CatalogService) ListRoutines(ctx context.Context) ([]models.Routine, error) {
	return s.routines.List(ctx)
}
