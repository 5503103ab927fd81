package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitcoach/coaching-app/internal/repository/memory"
	"fitcoach/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	traineeRepo := memory.NewTraineeRepository()
	SetupRoutes(
		router,
		service.NewTraineeService(traineeRepo),
		service.NewProgressService(memory.NewPerformanceRepository(), 0, 0),
		service.NewScheduleService(memory.NewScheduleRepository()),
		service.NewExerciseService(memory.NewExerciseRepository()),
		service.NewMealService(memory.NewMealRepository()),
		service.NewWeightService(memory.NewWeightRepository(), traineeRepo),
		service.NewStepsService(memory.NewStepsRepository(), 0),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestReportDailyPerformance(t *testing.T) {
	router := newTestRouter()
	traineeID := uuid.NewString()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/trainees/"+traineeID+"/performance",
		`{"completedExercises": 3, "completedMeals": 2, "date": "2025-03-12"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp PerformanceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 63, resp.ProgressValue)
	assert.Equal(t, "2025-03-12", resp.Date)
	assert.Equal(t, "الأربعاء", resp.Day)
}

func TestReportDailyPerformance_BadInput(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/trainees/not-a-uuid/performance",
		`{"completedExercises": 1, "completedMeals": 1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/trainees/"+uuid.NewString()+"/performance",
		`{"completedExercises": -1, "completedMeals": 1}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/trainees/"+uuid.NewString()+"/performance",
		`{"completedExercises": 1, "completedMeals": 1, "date": "12/03/2025"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetWeeklySeriesEndpoint(t *testing.T) {
	router := newTestRouter()
	traineeID := uuid.NewString()

	rr := doJSON(t, router, http.MethodPost, "/api/v1/trainees/"+traineeID+"/performance",
		`{"completedExercises": 5, "completedMeals": 3, "date": "2025-03-10"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSON(t, router, http.MethodGet, "/api/v1/trainees/"+traineeID+"/performance/weekly?date=2025-03-12", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp WeeklySeriesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 7)
	assert.Equal(t, "2025-03-12", resp.Entries[0].Date)
	assert.Equal(t, 100, resp.Entries[2].ProgressValue)
	assert.Equal(t, "2025-03-10", resp.Peak.Date)
	assert.Equal(t, 100, resp.Peak.ProgressValue)
}

func TestScheduleEndpoints(t *testing.T) {
	router := newTestRouter()
	traineeID := uuid.NewString()

	// First access provisions an empty schedule for the week.
	rr := doJSON(t, router, http.MethodGet, "/api/v1/trainees/"+traineeID+"/schedule?week=2025-03-12", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var schedule ScheduleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &schedule))
	require.NotEmpty(t, schedule.ID)
	assert.Equal(t, "2025-03-09", schedule.WeekStartDate)
	assert.Empty(t, schedule.Exercises)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/schedules/"+schedule.ID+"/exercises",
		`{"exerciseId": "`+uuid.NewString()+`", "dayOfWeek": 2, "sets": 3, "reps": 12}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = doJSON(t, router, http.MethodGet, "/api/v1/trainees/"+traineeID+"/schedule?week=2025-03-12", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &schedule))
	require.Len(t, schedule.Exercises, 1)

	entryID := schedule.Exercises[0].ID
	rr = doJSON(t, router, http.MethodDelete, "/api/v1/schedule-exercises/"+entryID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Deleting again stays successful.
	rr = doJSON(t, router, http.MethodDelete, "/api/v1/schedule-exercises/"+entryID, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/api/v1/schedules/"+schedule.ID+"/exercises",
		`{"exerciseId": "`+uuid.NewString()+`", "dayOfWeek": 7, "sets": 3, "reps": 12}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
