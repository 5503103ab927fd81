package api

import (
	"net/http"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PerformanceHandler holds the progress service dependency.
type PerformanceHandler struct {
	progressService service.ProgressService
}

// NewPerformanceHandler creates a new PerformanceHandler.
func NewPerformanceHandler(progressService service.ProgressService) *PerformanceHandler {
	return &PerformanceHandler{progressService: progressService}
}

// --- DTOs ---

// ReportPerformanceRequest defines the expected JSON for reporting daily activity.
type ReportPerformanceRequest struct {
	CompletedExercises int    `json:"completedExercises" binding:"min=0"`
	CompletedMeals     int    `json:"completedMeals" binding:"min=0"`
	Date               string `json:"date" binding:"omitempty"` // YYYY-MM-DD; defaults to today
}

// PerformanceResponse is the DTO for a single day's record.
type PerformanceResponse struct {
	ID                 string `json:"id"`
	TraineeID          string `json:"traineeId"`
	Date               string `json:"date"`
	Day                string `json:"day"`
	CompletedExercises int    `json:"completedExercises"`
	CompletedMeals     int    `json:"completedMeals"`
	ProgressValue      int    `json:"progressValue"`
}

// WeeklySeriesEntryResponse is one day of the weekly view.
type WeeklySeriesEntryResponse struct {
	Day                string `json:"day"`
	Date               string `json:"date"`
	CompletedExercises int    `json:"completedExercises"`
	CompletedMeals     int    `json:"completedMeals"`
	ProgressValue      int    `json:"progressValue"`
}

// WeeklySeriesResponse carries the 7-entry series and its peak day.
type WeeklySeriesResponse struct {
	Entries []WeeklySeriesEntryResponse `json:"entries"`
	Peak    WeeklySeriesEntryResponse   `json:"peak"`
}

func mapPerformanceToResponse(record *domain.DailyPerformance) PerformanceResponse {
	return PerformanceResponse{
		ID:                 record.ID,
		TraineeID:          record.TraineeID,
		Date:               record.Date.Format(dateLayout),
		Day:                domain.DayName(record.Date),
		CompletedExercises: record.CompletedExercises,
		CompletedMeals:     record.CompletedMeals,
		ProgressValue:      record.ProgressValue,
	}
}

func mapSeriesEntryToResponse(entry domain.WeeklyPerformanceEntry) WeeklySeriesEntryResponse {
	return WeeklySeriesEntryResponse{
		Day:                entry.Day,
		Date:               entry.Date.Format(dateLayout),
		CompletedExercises: entry.CompletedExercises,
		CompletedMeals:     entry.CompletedMeals,
		ProgressValue:      entry.ProgressValue,
	}
}

// --- Handler Methods ---

// ReportDailyPerformance records the trainee's activity for a date and
// returns the stored record with its derived progress value.
func (h *PerformanceHandler) ReportDailyPerformance(c *gin.Context) {
	var req ReportPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	record, err := h.progressService.UpsertDailyPerformance(
		c.Request.Context(),
		c.Param("traineeId"),
		date,
		req.CompletedExercises,
		req.CompletedMeals,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapPerformanceToResponse(record))
}

// GetWeeklySeries returns the trailing 7-day performance view.
func (h *PerformanceHandler) GetWeeklySeries(c *gin.Context) {
	referenceDate := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
			return
		}
		referenceDate = parsed
	}

	series, err := h.progressService.GetWeeklySeries(c.Request.Context(), c.Param("traineeId"), referenceDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response := WeeklySeriesResponse{
		Entries: make([]WeeklySeriesEntryResponse, 0, len(series.Entries)),
		Peak:    mapSeriesEntryToResponse(series.Peak),
	}
	for _, entry := range series.Entries {
		response.Entries = append(response.Entries, mapSeriesEntryToResponse(entry))
	}

	c.JSON(http.StatusOK, response)
}
