package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/leonelalz/nutritrack-api-sub000/controllers"
	"github.com/leonelalz/nutritrack-api-sub000/middlewares"
)

type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Catalog    *controllers.CatalogController
	Nutrition  *controllers.NutritionController
	Enrollment *controllers.EnrollmentController
	Session    *controllers.SessionController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", ctl.User.GetProfile)
		user.PATCH("/profile", ctl.User.UpdateProfile)
	}

	catalog := r.Group("/catalog")
	catalog.Use(middlewares.AuthMiddleware())
	{
		catalog.POST("/ingredients", ctl.Catalog.CreateIngredient)
		catalog.GET("/ingredients", ctl.Catalog.ListIngredients)
		catalog.POST("/exercises", ctl.Catalog.CreateExercise)
		catalog.GET("/exercises", ctl.Catalog.ListExercises)
		catalog.POST("/meals", ctl.Catalog.CreateMeal)
		catalog.GET("/meals", ctl.Catalog.ListMeals)
		catalog.GET("/meals/:id", ctl.Catalog.GetMeal)
		catalog.POST("/plans", ctl.Catalog.CreatePlan)
		catalog.GET("/plans", ctl.Catalog.ListPlans)
		catalog.POST("/routines", ctl.Catalog.CreateRoutine)
		catalog.GET("/routines", ctl.Catalog.ListRoutines)
	}

	nutrition := r.Group("/nutrition")
	nutrition.Use(middlewares.AuthMiddleware())
	{
		nutrition.GET("/meals/:id", ctl.Nutrition.MealNutrition)
		nutrition.GET("/days/:id", ctl.Nutrition.PlanDayNutrition)
		nutrition.GET("/plans/:id", ctl.Nutrition.PlanNutrition)
	}

	enrollments := r.Group("/enrollments")
	enrollments.Use(middlewares.AuthMiddleware())
	{
		enrollments.POST("", ctl.Enrollment.Activate)
		enrollments.GET("", ctl.Enrollment.ListAll)
		enrollments.GET("/active", ctl.Enrollment.GetActive)
		enrollments.POST("/:id/pause", ctl.Enrollment.Pause)
		enrollments.POST("/:id/resume", ctl.Enrollment.Resume)
		enrollments.POST("/:id/complete", ctl.Enrollment.Complete)
		enrollments.POST("/:id/cancel", ctl.Enrollment.Cancel)
		enrollments.POST("/:id/advance", ctl.Enrollment.Advance)
		enrollments.PATCH("/:id", ctl.Enrollment.UpdateNotes)
	}

	sessions := r.Group("/sessions")
	sessions.Use(middlewares.AuthMiddleware())
	{
		sessions.POST("", ctl.Session.LogSession)
		sessions.GET("", ctl.Session.ListRecent)
	}

	return r
}
