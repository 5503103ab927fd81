package api

import (
	"net/http"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WeightHandler holds the weight service dependency.
type WeightHandler struct {
	weightService service.WeightService
}

// NewWeightHandler creates a new WeightHandler.
func NewWeightHandler(weightService service.WeightService) *WeightHandler {
	return &WeightHandler{weightService: weightService}
}

// --- DTOs ---

// SubmitWeightRequest defines the expected JSON for a weigh-in.
type SubmitWeightRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Notes  string  `json:"notes"`
}

// WeightRecordResponse is the DTO for returning one weigh-in.
type WeightRecordResponse struct {
	ID        string    `json:"id"`
	TraineeID string    `json:"traineeId"`
	Weight    float64   `json:"weight"`
	Date      string    `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MapWeightRecordToResponse converts a domain.WeightRecord to its DTO.
func MapWeightRecordToResponse(record *domain.WeightRecord) WeightRecordResponse {
	if record == nil {
		return WeightRecordResponse{}
	}
	return WeightRecordResponse{
		ID:        record.ID,
		TraineeID: record.TraineeID,
		Weight:    record.Weight,
		Date:      record.Date.Format(dateLayout),
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
	}
}

// --- Handler Methods ---

// SubmitWeight records a weigh-in for the trainee and refreshes the
// profile's current weight.
func (h *WeightHandler) SubmitWeight(c *gin.Context) {
	var req SubmitWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	record, err := h.weightService.SubmitWeight(c.Request.Context(), c.Param("traineeId"), req.Weight, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapWeightRecordToResponse(record))
}

// GetWeightHistory retrieves the trainee's weigh-ins, newest first.
func (h *WeightHandler) GetWeightHistory(c *gin.Context) {
	records, err := h.weightService.WeightHistory(c.Request.Context(), c.Param("traineeId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]WeightRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, MapWeightRecordToResponse(&records[i]))
	}
	c.JSON(http.StatusOK, responses)
}
