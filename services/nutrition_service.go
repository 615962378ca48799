package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
	"github.com/leonelalz/nutritrack-api-sub000/utils"
)

var oneHundred = decimal.NewFromInt(100)

// NutrientTotals carries calorie and macro amounts at 2 fractional digits.
type NutrientTotals struct {
	Calories decimal.Decimal `json:"calories"`
	Protein  decimal.Decimal `json:"protein"`
	Fat      decimal.Decimal `json:"fat"`
	Carbs    decimal.Decimal `json:"carbs"`
}

// DayNutrition is the rollup for one plan day.
type DayNutrition struct {
	DayNumber int            `json:"day_number"`
	MealCount int            `json:"meal_count"`
	Totals    NutrientTotals `json:"totals"`
}

// PlanNutrition averages daily totals over the days that actually have meals.
// NoData is set when no day of the plan has any meal assigned.
type PlanNutrition struct {
	PlanID      uint           `json:"plan_id"`
	Days        []DayNutrition `json:"days"`
	Average     NutrientTotals `json:"average"`
	DaysCounted int            `json:"days_counted"`
	NoData      bool           `json:"no_data"`
}

// NutritionService rolls nutrient values up from recipe lines through meals,
// days and plans, and derives calorie burn for exercise sessions.
//
// Rounding contract: the quantity/100 factor and every other division is
// rounded half-up at 4 fractional digits before multiplying; sums are
// re-rounded half-up to 2 digits at the end. Totals only match the catalog
// authors' expectations if both stages are applied in that order.
type NutritionService struct {
	meals repository.MealRepository
	plans repository.PlanRepository
}

func NewNutritionService(meals repository.MealRepository, plans repository.PlanRepository) *NutritionService {
	return &NutritionService{meals: meals, plans: plans}
}

// scaledLine is the unrounded per-field product of per-100g facts with the
// 4-digit quantity factor. Callers round when surfacing.
func scaledLine(facts models.Ingredient, quantityGrams decimal.Decimal) (cal, prot, fat, carbs decimal.Decimal) {
	factor := utils.DivHalfUp(quantityGrams, oneHundred)
	return facts.Calories.Mul(factor),
		facts.Protein.Mul(factor),
		facts.Fat.Mul(factor),
		facts.Carbs.Mul(factor)
}

// ScaleNutrition returns the nutrition of quantityGrams of an ingredient.
func (s *NutritionService) ScaleNutrition(facts models.Ingredient, quantityGrams decimal.Decimal) NutrientTotals {
	cal, prot, fat, carbs := scaledLine(facts, quantityGrams)
	return NutrientTotals{
		Calories: utils.ScaleHalfUp(cal, utils.FinalScale),
		Protein:  utils.ScaleHalfUp(prot, utils.FinalScale),
		Fat:      utils.ScaleHalfUp(fat, utils.FinalScale),
		Carbs:    utils.ScaleHalfUp(carbs, utils.FinalScale),
	}
}

// SumMeal totals all recipe lines of a meal. An empty meal yields all zeros.
func (s *NutritionService) SumMeal(lines []models.RecipeLine) NutrientTotals {
	var cal, prot, fat, carbs decimal.Decimal
	for _, line := range lines {
		c, p, f, cb := scaledLine(line.Ingredient, line.QuantityGrams)
		cal = cal.Add(c)
		prot = prot.Add(p)
		fat = fat.Add(f)
		carbs = carbs.Add(cb)
	}
	return NutrientTotals{
		Calories: utils.ScaleHalfUp(cal, utils.FinalScale),
		Protein:  utils.ScaleHalfUp(prot, utils.FinalScale),
		Fat:      utils.ScaleHalfUp(fat, utils.FinalScale),
		Carbs:    utils.ScaleHalfUp(carbs, utils.FinalScale),
	}
}

// SumDay totals every meal occurring in one plan day.
func (s *NutritionService) SumDay(meals []models.Meal) NutrientTotals {
	var out NutrientTotals
	for _, m := range meals {
		t := s.SumMeal(m.Lines)
		out.Calories = out.Calories.Add(t.Calories)
		out.Protein = out.Protein.Add(t.Protein)
		out.Fat = out.Fat.Add(t.Fat)
		out.Carbs = out.Carbs.Add(t.Carbs)
	}
	return out
}

// AverageAcrossDays is the arithmetic mean over the days that have at least
// one meal; days without meals are excluded from the denominator. The second
// return is false when no day has data.
func (s *NutritionService) AverageAcrossDays(perDay []NutrientTotals) (NutrientTotals, bool) {
	if len(perDay) == 0 {
		return NutrientTotals{}, false
	}
	var cal, prot, fat, carbs decimal.Decimal
	for _, d := range perDay {
		cal = cal.Add(d.Calories)
		prot = prot.Add(d.Protein)
		fat = fat.Add(d.Fat)
		carbs = carbs.Add(d.Carbs)
	}
	n := decimal.NewFromInt(int64(len(perDay)))
	return NutrientTotals{
		Calories: utils.ScaleHalfUp(utils.DivHalfUp(cal, n), utils.FinalScale),
		Protein:  utils.ScaleHalfUp(utils.DivHalfUp(prot, n), utils.FinalScale),
		Fat:      utils.ScaleHalfUp(utils.DivHalfUp(fat, n), utils.FinalScale),
		Carbs:    utils.ScaleHalfUp(utils.DivHalfUp(carbs, n), utils.FinalScale),
	}, true
}

// CaloriesBurned derives burn for an actual session duration from the
// exercise's estimate over its reference duration. A zero or missing
// reference duration is a catalog authoring defect, not a user error.
func (s *NutritionService) CaloriesBurned(exercise models.Exercise, actualDurationMins int) (decimal.Decimal, error) {
	if exercise.ReferenceDurationMins <= 0 {
		return decimal.Zero, apperrors.DivisionByZero(
			"exercise " + exercise.Name + " has no reference duration")
	}
	perMin := utils.DivHalfUp(exercise.EstimatedCalories, decimal.NewFromInt(int64(exercise.ReferenceDurationMins)))
	total := perMin.Mul(decimal.NewFromInt(int64(actualDurationMins)))
	return utils.ScaleHalfUp(total, utils.FinalScale), nil
}

// CaloriesConsumed is the meal's energy times the number of portions.
func (s *NutritionService) CaloriesConsumed(meal models.Meal, portions decimal.Decimal) decimal.Decimal {
	energy := s.SumMeal(meal.Lines).Calories
	return utils.ScaleHalfUp(energy.Mul(portions), utils.FinalScale)
}

// MealNutrition resolves a meal id and totals it.
func (s *NutritionService) MealNutrition(ctx context.Context, mealID uint) (*NutrientTotals, error) {
	meal, err := s.meals.FindByID(ctx, mealID)
	if err != nil {
		return nil, err
	}
	totals := s.SumMeal(meal.Lines)
	return &totals, nil
}

// PlanDayNutrition resolves a plan day id and totals its meals.
func (s *NutritionService) PlanDayNutrition(ctx context.Context, planDayID uint) (*DayNutrition, error) {
	day, err := s.plans.FindDay(ctx, planDayID)
	if err != nil {
		return nil, err
	}
	out := s.rollupDay(day)
	return &out, nil
}

// PlanNutrition rolls the whole plan up: per-day totals plus the average over
// the days that have meals.
func (s *NutritionService) PlanNutrition(ctx context.Context, planID uint) (*PlanNutrition, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	out := &PlanNutrition{PlanID: plan.ID, Days: []DayNutrition{}}
	var withMeals []NutrientTotals
	for i := range plan.Days {
		day := s.rollupDay(&plan.Days[i])
		out.Days = append(out.Days, day)
		if day.MealCount > 0 {
			withMeals = append(withMeals, day.Totals)
		}
	}

	avg, ok := s.AverageAcrossDays(withMeals)
	out.Average = avg
	out.DaysCounted = len(withMeals)
	out.NoData = !ok
	return out, nil
}

func (s *NutritionService) rollupDay(day *models.PlanDay) DayNutrition {
	meals := make([]models.Meal, 0, len(day.Meals))
	for _, pm := range day.Meals {
		meals = append(meals, pm.Meal)
	}
	return DayNutrition{
		DayNumber: day.DayNumber,
		MealCount: len(meals),
		Totals:    s.SumDay(meals),
	}
}
