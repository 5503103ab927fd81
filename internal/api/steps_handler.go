package api

import (
	"net/http"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// StepsHandler holds the steps service dependency.
type StepsHandler struct {
	stepsService service.StepsService
}

// NewStepsHandler creates a new StepsHandler.
func NewStepsHandler(stepsService service.StepsService) *StepsHandler {
	return &StepsHandler{stepsService: stepsService}
}

// --- DTOs ---

// ReportStepsRequest defines the expected JSON for reporting a day's steps.
type ReportStepsRequest struct {
	Steps int    `json:"steps" binding:"min=0"`
	Date  string `json:"date" binding:"omitempty"` // YYYY-MM-DD; defaults to today
}

// StepRecordResponse is the DTO for one day's step count.
type StepRecordResponse struct {
	ID          string `json:"id,omitempty"`
	TraineeID   string `json:"traineeId"`
	Date        string `json:"date"`
	Day         string `json:"day"`
	Steps       int    `json:"steps"`
	TargetSteps int    `json:"targetSteps"`
}

// MapStepRecordToResponse converts a domain.StepRecord to its DTO.
func MapStepRecordToResponse(record *domain.StepRecord) StepRecordResponse {
	if record == nil {
		return StepRecordResponse{}
	}
	return StepRecordResponse{
		ID:          record.ID,
		TraineeID:   record.TraineeID,
		Date:        record.Date.Format(dateLayout),
		Day:         domain.DayName(record.Date),
		Steps:       record.Steps,
		TargetSteps: record.TargetSteps,
	}
}

// --- Handler Methods ---

// ReportDailySteps records the trainee's step count for a date.
func (h *StepsHandler) ReportDailySteps(c *gin.Context) {
	var req ReportStepsRequest
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

	record, err := h.stepsService.UpsertDailySteps(c.Request.Context(), c.Param("traineeId"), date, req.Steps)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapStepRecordToResponse(record))
}

// GetWeeklySteps returns the trailing 7-day step view.
func (h *StepsHandler) GetWeeklySteps(c *gin.Context) {
	referenceDate := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD.")
			return
		}
		referenceDate = parsed
	}

	records, err := h.stepsService.GetWeeklySteps(c.Request.Context(), c.Param("traineeId"), referenceDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]StepRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, MapStepRecordToResponse(&records[i]))
	}
	c.JSON(http.StatusOK, responses)
}
