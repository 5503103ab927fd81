package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcoach/coaching-app/internal/api"
	"fitcoach/coaching-app/internal/config"
	"fitcoach/coaching-app/internal/repository"
	"fitcoach/coaching-app/internal/repository/memory"
	mongorepo "fitcoach/coaching-app/internal/repository/mongo"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// repositories bundles every store the services need, so the storage driver
// can be swapped in one place.
type repositories struct {
	performance repository.PerformanceRepository
	schedule    repository.ScheduleRepository
	exercise    repository.ExerciseRepository
	meal        repository.MealRepository
	trainee     repository.TraineeRepository
	weight      repository.WeightRepository
	steps       repository.StepsRepository
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.Info("Starting coaching app server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("Could not load config")
	}
	log.Info("Configuration loaded.")

	// --- Storage Driver ---
	var repos repositories
	switch cfg.Storage.Driver {
	case "mongo":
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.WithError(err).Fatal("Could not connect to MongoDB")
		}
		defer func() {
			log.Info("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.WithError(err).Error("Failed to disconnect MongoDB")
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Info("Database connection established.")

		log.Info("Ensuring database indexes...")
		go func() { // Run index creation concurrently/in background
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsurePerformanceIndexes(ctx, appDB.Collection("trainee_performance"))
			mongorepo.EnsureScheduleIndexes(ctx, appDB)
			mongorepo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
			mongorepo.EnsureTraineeIndexes(ctx, appDB.Collection("trainee_profiles"))
			mongorepo.EnsureWeightIndexes(ctx, appDB.Collection("weight_records"))
			mongorepo.EnsureStepsIndexes(ctx, appDB.Collection("trainee_steps"))
			log.Info("Index creation process completed.")
		}()

		repos = repositories{
			performance: mongorepo.NewMongoPerformanceRepository(appDB),
			schedule:    mongorepo.NewMongoScheduleRepository(appDB),
			exercise:    mongorepo.NewMongoExerciseRepository(appDB),
			meal:        mongorepo.NewMongoMealRepository(appDB),
			trainee:     mongorepo.NewMongoTraineeRepository(appDB),
			weight:      mongorepo.NewMongoWeightRepository(appDB),
			steps:       mongorepo.NewMongoStepsRepository(appDB),
		}

	case "memory":
		log.Warn("Using in-memory storage; all data is lost on shutdown.")
		repos = repositories{
			performance: memory.NewPerformanceRepository(),
			schedule:    memory.NewScheduleRepository(),
			exercise:    memory.NewExerciseRepository(),
			meal:        memory.NewMealRepository(),
			trainee:     memory.NewTraineeRepository(),
			weight:      memory.NewWeightRepository(),
			steps:       memory.NewStepsRepository(),
		}

	default:
		log.Fatalf("Unknown storage driver %q (expected mongo or memory)", cfg.Storage.Driver)
	}

	// --- Initialize Services ---
	log.Info("Initializing services...")
	progressService := service.NewProgressService(repos.performance, cfg.Scoring.MaxExercises, cfg.Scoring.MaxMeals)
	scheduleService := service.NewScheduleService(repos.schedule)
	exerciseService := service.NewExerciseService(repos.exercise)
	mealService := service.NewMealService(repos.meal)
	traineeService := service.NewTraineeService(repos.trainee)
	weightService := service.NewWeightService(repos.weight, repos.trainee)
	stepsService := service.NewStepsService(repos.steps, cfg.Steps.DailyTarget)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Info("Setting up API routes...")
	api.SetupRoutes(router, traineeService, progressService, scheduleService, exerciseService, mealService, weightService, stepsService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ListenAndServe error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exiting.")
}
