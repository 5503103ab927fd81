package api

import (
	"net/http"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// MealHandler holds the meal service dependency.
type MealHandler struct {
	mealService service.MealService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealService service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// --- DTOs ---

// CreateMealRequest defines the expected JSON for creating a meal.
type CreateMealRequest struct {
	Name        string `json:"name" binding:"required"`
	Calories    int    `json:"calories" binding:"min=0"`
	Timing      string `json:"timing" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Description string `json:"description"`
}

// UpdateMealRequest defines the expected JSON for updating a meal.
type UpdateMealRequest struct {
	Name        string `json:"name" binding:"required"`
	Calories    int    `json:"calories" binding:"min=0"`
	Timing      string `json:"timing" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=active archived"`
}

// MealResponse is the DTO for returning meal details.
type MealResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Calories    int       `json:"calories"`
	Timing      string    `json:"timing,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MapMealToResponse converts a domain.Meal to MealResponse DTO.
func MapMealToResponse(meal *domain.Meal) MealResponse {
	if meal == nil {
		return MealResponse{}
	}
	return MealResponse{
		ID:          meal.ID,
		Name:        meal.Name,
		Calories:    meal.Calories,
		Timing:      string(meal.Timing),
		Description: meal.Description,
		Status:      string(meal.Status),
		CreatedAt:   meal.CreatedAt,
		UpdatedAt:   meal.UpdatedAt,
	}
}

// --- Handler Methods ---

// CreateMeal creates a new menu meal.
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	meal, err := h.mealService.CreateMeal(
		c.Request.Context(),
		req.Name,
		req.Calories,
		domain.MealTiming(req.Timing),
		req.Description,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapMealToResponse(meal))
}

// GetMeals retrieves all active menu meals.
func (h *MealHandler) GetMeals(c *gin.Context) {
	meals, err := h.mealService.GetActiveMeals(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]MealResponse, 0, len(meals))
	for i := range meals {
		responses = append(responses, MapMealToResponse(&meals[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetMealByID retrieves a single meal.
func (h *MealHandler) GetMealByID(c *gin.Context) {
	meal, err := h.mealService.GetMealByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapMealToResponse(meal))
}

// UpdateMeal updates an existing meal.
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	meal, err := h.mealService.UpdateMeal(
		c.Request.Context(),
		c.Param("id"),
		req.Name,
		req.Calories,
		domain.MealTiming(req.Timing),
		req.Description,
		domain.CatalogStatus(req.Status),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapMealToResponse(meal))
}

// DeleteMeal removes a meal from the menu.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	if err := h.mealService.DeleteMeal(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
