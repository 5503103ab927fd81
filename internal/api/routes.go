package api

import (
	"net/http"

	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all HTTP endpoints onto the router.
func SetupRoutes(
	router *gin.Engine,
	traineeService service.TraineeService,
	progressService service.ProgressService,
	scheduleService service.ScheduleService,
	exerciseService service.ExerciseService,
	mealService service.MealService,
	weightService service.WeightService,
	stepsService service.StepsService,
) {
	traineeHandler := NewTraineeHandler(traineeService)
	performanceHandler := NewPerformanceHandler(progressService)
	scheduleHandler := NewScheduleHandler(scheduleService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	mealHandler := NewMealHandler(mealService)
	weightHandler := NewWeightHandler(weightService)
	stepsHandler := NewStepsHandler(stepsService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		// --- Trainee Profiles ---
		traineeGroup := apiV1.Group("/trainees")
		{
			traineeGroup.POST("", traineeHandler.RegisterTrainee)
			traineeGroup.GET("", traineeHandler.GetTrainees)
			traineeGroup.GET("/:traineeId", traineeHandler.GetTraineeByID)
			traineeGroup.PUT("/:traineeId", traineeHandler.UpdateTrainee)

			// --- Daily Performance & Weekly Progress ---
			traineeGroup.POST("/:traineeId/performance", performanceHandler.ReportDailyPerformance)
			traineeGroup.GET("/:traineeId/performance/weekly", performanceHandler.GetWeeklySeries)

			// --- Weekly Schedule ---
			traineeGroup.GET("/:traineeId/schedule", scheduleHandler.GetOrCreateSchedule)

			// --- Weight Tracking ---
			traineeGroup.POST("/:traineeId/weight", weightHandler.SubmitWeight)
			traineeGroup.GET("/:traineeId/weight", weightHandler.GetWeightHistory)

			// --- Step Tracking ---
			traineeGroup.POST("/:traineeId/steps", stepsHandler.ReportDailySteps)
			traineeGroup.GET("/:traineeId/steps/weekly", stepsHandler.GetWeeklySteps)
		}

		// --- Schedule Entries ---
		scheduleGroup := apiV1.Group("/schedules")
		{
			scheduleGroup.POST("/:scheduleId/exercises", scheduleHandler.AssignExercise)
			scheduleGroup.POST("/:scheduleId/meals", scheduleHandler.AssignMeal)
		}
		apiV1.DELETE("/schedule-exercises/:entryId", scheduleHandler.RemoveExercise)
		apiV1.POST("/schedule-exercises/:entryId/complete", scheduleHandler.CompleteExercise)
		apiV1.DELETE("/schedule-meals/:entryId", scheduleHandler.RemoveMeal)

		// --- Exercise Catalog ---
		exerciseGroup := apiV1.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.GetExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExerciseByID)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		// --- Meal Menu ---
		mealGroup := apiV1.Group("/meals")
		{
			mealGroup.POST("", mealHandler.CreateMeal)
			mealGroup.GET("", mealHandler.GetMeals)
			mealGroup.GET("/:id", mealHandler.GetMealByID)
			mealGroup.PUT("/:id", mealHandler.UpdateMeal)
			mealGroup.DELETE("/:id", mealHandler.DeleteMeal)
		}
	}
}
