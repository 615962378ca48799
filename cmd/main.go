package main

import (
	"log"

	"github.com/leonelalz/nutritrack-api-sub000/config"
	"github.com/leonelalz/nutritrack-api-sub000/controllers"
	"github.com/leonelalz/nutritrack-api-sub000/logger"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
	"github.com/leonelalz/nutritrack-api-sub000/routes"
	"github.com/leonelalz/nutritrack-api-sub000/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appLog := logger.New(cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)
	mealRepo := repository.NewMealRepository(db)
	planRepo := repository.NewPlanRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	targetReader := repository.NewTargetReader(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	userSvc := services.NewUserService(userRepo)
	catalogSvc := services.NewCatalogService(ingredientRepo, exerciseRepo, mealRepo, planRepo, routineRepo)
	nutritionSvc := services.NewNutritionService(mealRepo, planRepo)
	overlap := services.NewOverlapValidator(enrollmentRepo)
	enrollmentSvc := services.NewEnrollmentService(enrollmentRepo, targetReader, overlap)
	sessionSvc := services.NewSessionService(sessionRepo, exerciseRepo, nutritionSvc)

	sweep := services.NewSweepService(enrollmentRepo, appLog)
	if err := sweep.Start(cfg.SweepSchedule); err != nil {
		log.Fatalf("Failed to start enrollment sweep: %v", err)
	}
	defer sweep.Stop()

	r := routes.SetupRouter(routes.Controllers{
		Auth:       controllers.NewAuthController(authSvc),
		User:       controllers.NewUserController(userSvc),
		Catalog:    controllers.NewCatalogController(catalogSvc),
		Nutrition:  controllers.NewNutritionController(nutritionSvc),
		Enrollment: controllers.NewEnrollmentController(enrollmentSvc),
		Session:    controllers.NewSessionController(sessionSvc),
	})

	appLog.Info().Str("port", cfg.Port).Msg("starting nutritrack api")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
