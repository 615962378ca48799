package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonelalz/nutritrack-api-sub000/services"
)

type NutritionController struct {
	nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{nutrition: nutrition}
}

func (ctl *NutritionController) MealNutrition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	totals, err := ctl.nutrition.MealNutrition(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (ctl *NutritionController) PlanDayNutrition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	day, err := ctl.nutrition.PlanDayNutrition(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (ctl *NutritionController) PlanNutrition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	plan, err := ctl.nutrition.PlanNutrition(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
