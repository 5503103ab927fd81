package api

import (
	"net/http"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler holds the schedule service dependency.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// --- DTOs ---

// AssignExerciseRequest defines the expected JSON for assigning an exercise
// to a day of the schedule.
type AssignExerciseRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	DayOfWeek  int    `json:"dayOfWeek"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
}

// AssignMealRequest defines the expected JSON for assigning a meal slot.
type AssignMealRequest struct {
	MealID    string `json:"mealId" binding:"required"`
	DayOfWeek int    `json:"dayOfWeek"`
	Timing    string `json:"timing" binding:"required"`
}

// ScheduleExerciseResponse is the DTO for one assigned exercise entry.
type ScheduleExerciseResponse struct {
	ID          string     `json:"id"`
	ExerciseID  string     `json:"exerciseId"`
	DayOfWeek   int        `json:"dayOfWeek"`
	Sets        int        `json:"sets"`
	Reps        int        `json:"reps"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ScheduleMealResponse is the DTO for one assigned meal entry.
type ScheduleMealResponse struct {
	ID        string `json:"id"`
	MealID    string `json:"mealId"`
	DayOfWeek int    `json:"dayOfWeek"`
	Timing    string `json:"timing"`
}

// ScheduleResponse is the DTO for a weekly schedule with entries grouped by day.
type ScheduleResponse struct {
	ID             string                             `json:"id"`
	TraineeID      string                             `json:"traineeId"`
	WeekStartDate  string                             `json:"weekStartDate"`
	Exercises      []ScheduleExerciseResponse         `json:"exercises"`
	Meals          []ScheduleMealResponse             `json:"meals"`
	ExercisesByDay map[int][]ScheduleExerciseResponse `json:"exercisesByDay"`
	MealsByDay     map[int][]ScheduleMealResponse     `json:"mealsByDay"`
}

func mapScheduleExerciseToResponse(entry domain.ScheduleExercise) ScheduleExerciseResponse {
	return ScheduleExerciseResponse{
		ID:          entry.ID,
		ExerciseID:  entry.ExerciseID,
		DayOfWeek:   entry.DayOfWeek,
		Sets:        entry.Sets,
		Reps:        entry.Reps,
		Status:      string(entry.Status),
		CompletedAt: entry.CompletedAt,
	}
}

func mapScheduleMealToResponse(entry domain.ScheduleMeal) ScheduleMealResponse {
	return ScheduleMealResponse{
		ID:        entry.ID,
		MealID:    entry.MealID,
		DayOfWeek: entry.DayOfWeek,
		Timing:    string(entry.Timing),
	}
}

func mapScheduleToResponse(schedule *domain.WeeklySchedule) ScheduleResponse {
	response := ScheduleResponse{
		ID:             schedule.ID,
		TraineeID:      schedule.TraineeID,
		WeekStartDate:  schedule.WeekStartDate.Format(dateLayout),
		Exercises:      make([]ScheduleExerciseResponse, 0, len(schedule.Exercises)),
		Meals:          make([]ScheduleMealResponse, 0, len(schedule.Meals)),
		ExercisesByDay: make(map[int][]ScheduleExerciseResponse),
		MealsByDay:     make(map[int][]ScheduleMealResponse),
	}
	for _, entry := range schedule.Exercises {
		response.Exercises = append(response.Exercises, mapScheduleExerciseToResponse(entry))
	}
	for _, entry := range schedule.Meals {
		response.Meals = append(response.Meals, mapScheduleMealToResponse(entry))
	}
	for day, entries := range service.ExercisesByDay(schedule) {
		for _, entry := range entries {
			response.ExercisesByDay[day] = append(response.ExercisesByDay[day], mapScheduleExerciseToResponse(entry))
		}
	}
	for day, entries := range service.MealsByDay(schedule) {
		for _, entry := range entries {
			response.MealsByDay[day] = append(response.MealsByDay[day], mapScheduleMealToResponse(entry))
		}
	}
	return response
}

// --- Handler Methods ---

// GetOrCreateSchedule returns the trainee's schedule for the week containing
// the given date, creating an empty one on first access.
func (h *ScheduleHandler) GetOrCreateSchedule(c *gin.Context) {
	weekDate := time.Now().UTC()
	if dateStr := c.Query("week"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid week date, expected YYYY-MM-DD.")
			return
		}
		weekDate = parsed
	}

	schedule, err := h.scheduleService.GetOrCreateSchedule(c.Request.Context(), c.Param("traineeId"), weekDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapScheduleToResponse(schedule))
}

// AssignExercise adds one exercise entry to a schedule.
func (h *ScheduleHandler) AssignExercise(c *gin.Context) {
	var req AssignExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.scheduleService.AssignExercise(
		c.Request.Context(),
		c.Param("scheduleId"),
		req.ExerciseID,
		req.DayOfWeek,
		req.Sets,
		req.Reps,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// RemoveExercise deletes one exercise entry. Removing an entry that is
// already gone still returns 204.
func (h *ScheduleHandler) RemoveExercise(c *gin.Context) {
	if err := h.scheduleService.RemoveExercise(c.Request.Context(), c.Param("entryId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CompleteExercise marks one exercise entry as completed.
func (h *ScheduleHandler) CompleteExercise(c *gin.Context) {
	if err := h.scheduleService.CompleteExercise(c.Request.Context(), c.Param("entryId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignMeal adds one meal entry to a schedule.
func (h *ScheduleHandler) AssignMeal(c *gin.Context) {
	var req AssignMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	err := h.scheduleService.AssignMeal(
		c.Request.Context(),
		c.Param("scheduleId"),
		req.MealID,
		req.DayOfWeek,
		domain.MealTiming(req.Timing),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// RemoveMeal deletes one meal entry, idempotently.
func (h *ScheduleHandler) RemoveMeal(c *gin.Context) {
	if err := h.scheduleService.RemoveMeal(c.Request.Context(), c.Param("entryId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
