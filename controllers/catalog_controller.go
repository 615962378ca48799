package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonelalz/nutritrack-api-sub000/services"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

func (ctl *CatalogController) CreateIngredient(c *gin.Context) {
	var in services.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := ctl.catalog.CreateIngredient(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func (ctl *CatalogController) ListIngredients(c *gin.Context) {
	list, err := ctl.catalog.ListIngredients(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *CatalogController) CreateExercise(c *gin.Context) {
	var in services.ExerciseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ex, err := ctl.catalog.CreateExercise(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, ex)
}

func (ctl *CatalogController) ListExercises(c *gin.Context) {
	list, err := ctl.catalog.ListExercises(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *CatalogController) CreateMeal(c *gin.Context) {
	var in services.MealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	meal, err := ctl.catalog.CreateMeal(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (ctl *CatalogController) GetMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	meal, err := ctl.catalog.GetMeal(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (ctl *CatalogController) ListMeals(c *gin.Context) {
	list, err := ctl.catalog.ListMeals(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *CatalogController) CreatePlan(c *gin.Context) {
	var in services.PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := ctl.catalog.CreatePlan(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (ctl *CatalogController) ListPlans(c *gin.Context) {
	list, err := ctl.catalog.ListPlans(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (ctl *CatalogController) CreateRoutine(c *gin.Context) {
	var in services.RoutineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	routine, err := ctl.catalog.CreateRoutine(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (ctl *CatalogController) ListRoutines(c *gin.Context) {
	list, err := ctl.catalog.ListRoutines(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
