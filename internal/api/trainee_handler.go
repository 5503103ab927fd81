package api

import (
	"net/http"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TraineeHandler holds the trainee service dependency.
type TraineeHandler struct {
	traineeService service.TraineeService
}

// NewTraineeHandler creates a new TraineeHandler.
func NewTraineeHandler(traineeService service.TraineeService) *TraineeHandler {
	return &TraineeHandler{traineeService: traineeService}
}

// --- DTOs ---

// RegisterTraineeRequest defines the expected JSON for registering a trainee.
type RegisterTraineeRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone"`
	InitialWeight float64  `json:"initialWeight" binding:"required,gt=0"`
	TargetWeight  float64  `json:"targetWeight" binding:"omitempty,gt=0"`
	Height        float64  `json:"height" binding:"omitempty,gt=0"`
	FatPercentage float64  `json:"fatPercentage" binding:"omitempty,gte=0,lte=100"`
	MuscleMass    float64  `json:"muscleMass" binding:"omitempty,gte=0"`
	Goals         []string `json:"goals"`
}

// UpdateTraineeRequest defines the expected JSON for updating a trainee.
type UpdateTraineeRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone"`
	TargetWeight  float64  `json:"targetWeight" binding:"omitempty,gt=0"`
	Height        float64  `json:"height" binding:"omitempty,gt=0"`
	FatPercentage float64  `json:"fatPercentage" binding:"omitempty,gte=0,lte=100"`
	MuscleMass    float64  `json:"muscleMass" binding:"omitempty,gte=0"`
	Goals         []string `json:"goals"`
	Status        string   `json:"status" binding:"omitempty,oneof=active pending inactive"`
}

// TraineeResponse is the DTO for returning trainee profile details.
type TraineeResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	InitialWeight float64   `json:"initialWeight"`
	CurrentWeight float64   `json:"currentWeight"`
	TargetWeight  float64   `json:"targetWeight,omitempty"`
	Height        float64   `json:"height,omitempty"`
	FatPercentage float64   `json:"fatPercentage,omitempty"`
	MuscleMass    float64   `json:"muscleMass,omitempty"`
	Goals         []string  `json:"goals,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MapTraineeToResponse converts a domain.Trainee to TraineeResponse DTO.
func MapTraineeToResponse(trainee *domain.Trainee) TraineeResponse {
	if trainee == nil {
		return TraineeResponse{}
	}
	return TraineeResponse{
		ID:            trainee.ID,
		Name:          trainee.Name,
		Email:         trainee.Email,
		Phone:         trainee.Phone,
		InitialWeight: trainee.InitialWeight,
		CurrentWeight: trainee.CurrentWeight,
		TargetWeight:  trainee.TargetWeight,
		Height:        trainee.Height,
		FatPercentage: trainee.FatPercentage,
		MuscleMass:    trainee.MuscleMass,
		Goals:         trainee.Goals,
		Status:        string(trainee.Status),
		CreatedAt:     trainee.CreatedAt,
		UpdatedAt:     trainee.UpdatedAt,
	}
}

// --- Handler Methods ---

// RegisterTrainee creates a new trainee profile.
func (h *TraineeHandler) RegisterTrainee(c *gin.Context) {
	var req RegisterTraineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainee, err := h.traineeService.RegisterTrainee(c.Request.Context(), service.RegisterTraineeInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		InitialWeight: req.InitialWeight,
		TargetWeight:  req.TargetWeight,
		Height:        req.Height,
		FatPercentage: req.FatPercentage,
		MuscleMass:    req.MuscleMass,
		Goals:         req.Goals,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapTraineeToResponse(trainee))
}

// GetTrainees retrieves all trainee profiles.
func (h *TraineeHandler) GetTrainees(c *gin.Context) {
	trainees, err := h.traineeService.GetTrainees(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]TraineeResponse, 0, len(trainees))
	for i := range trainees {
		responses = append(responses, MapTraineeToResponse(&trainees[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetTraineeByID retrieves a single trainee profile.
func (h *TraineeHandler) GetTraineeByID(c *gin.Context) {
	trainee, err := h.traineeService.GetTraineeByID(c.Request.Context(), c.Param("traineeId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapTraineeToResponse(trainee))
}

// UpdateTrainee updates a trainee profile. Initial measurements cannot be
// changed through this endpoint.
func (h *TraineeHandler) UpdateTrainee(c *gin.Context) {
	var req UpdateTraineeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainee := &domain.Trainee{
		ID:            c.Param("traineeId"),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		TargetWeight:  req.TargetWeight,
		Height:        req.Height,
		FatPercentage: req.FatPercentage,
		MuscleMass:    req.MuscleMass,
		Goals:         req.Goals,
		Status:        domain.TraineeStatus(req.Status),
	}

	updated, err := h.traineeService.UpdateTrainee(c.Request.Context(), trainee)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapTraineeToResponse(updated))
}
