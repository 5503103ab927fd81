package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"fitcoach/coaching-app/internal/domain"
	"fitcoach/coaching-app/internal/repository"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	// ErrValidation marks malformed input rejected before any storage call.
	// Specific causes wrap it, so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrInvalidTraineeID = fmt.Errorf("%w: trainee id must be a valid UUID", ErrValidation)
	ErrNegativeCount    = fmt.Errorf("%w: activity counts cannot be negative", ErrValidation)
)

// Exercise adherence is weighted higher than meal adherence. The split must
// stay exactly 60/40 so stored progress values remain comparable over time.
const (
	exerciseWeight = 60
	mealWeight     = 40
)

// Default planned daily totals, used when the caller has no schedule-derived
// totals. These are deliberate policy values, overridable via config.
const (
	DefaultMaxExercises = 5
	DefaultMaxMeals     = 3
)

// ComputeDailyScore converts raw daily activity into a bounded completion
// percentage. Each ratio is clamped to 1 before weighting, so exceeding the
// plan never pushes the score past 100. Rounding is half-up.
func ComputeDailyScore(completedExercises, completedMeals, maxExercises, maxMeals int) int {
	exerciseRatio := math.Min(1, float64(completedExercises)/float64(maxExercises))
	mealRatio := math.Min(1, float64(completedMeals)/float64(maxMeals))
	return int(math.Round(exerciseRatio*exerciseWeight + mealRatio*mealWeight))
}

// --- Service Interface ---

type ProgressService interface {
	// UpsertDailyPerformance records a trainee's activity for one date,
	// deriving the progress value. Exactly one write happens per call:
	// an update when a record for (trainee, date) exists, an insert
	// otherwise.
	UpsertDailyPerformance(ctx context.Context, traineeID string, date time.Time, completedExercises, completedMeals int) (*domain.DailyPerformance, error)

	// GetWeeklySeries assembles the trailing 7-day view ending at
	// referenceDate, zero-filling days without records. The result always
	// has exactly 7 entries, most recent first.
	GetWeeklySeries(ctx context.Context, traineeID string, referenceDate time.Time) (*domain.WeeklyPerformanceSeries, error)
}

// --- Service Implementation ---

// progressService implements the ProgressService interface.
type progressService struct {
	performanceRepo repository.PerformanceRepository
	maxExercises    int
	maxMeals        int
}

// NewProgressService creates a new instance of progressService. Non-positive
// planned totals fall back to the documented defaults.
func NewProgressService(performanceRepo repository.PerformanceRepository, maxExercises, maxMeals int) ProgressService {
	if maxExercises <= 0 {
		maxExercises = DefaultMaxExercises
	}
	if maxMeals <= 0 {
		maxMeals = DefaultMaxMeals
	}
	return &progressService{
		performanceRepo: performanceRepo,
		maxExercises:    maxExercises,
		maxMeals:        maxMeals,
	}
}

func (s *progressService) UpsertDailyPerformance(ctx context.Context, traineeID string, date time.Time, completedExercises, completedMeals int) (*domain.DailyPerformance, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}
	if completedExercises < 0 || completedMeals < 0 {
		return nil, ErrNegativeCount
	}

	day := domain.DateOnly(date)
	score := ComputeDailyScore(completedExercises, completedMeals, s.maxExercises, s.maxMeals)

	existing, err := s.performanceRepo.GetByTraineeAndDate(ctx, traineeID, day)
	switch {
	case err == nil:
		existing.CompletedExercises = completedExercises
		existing.CompletedMeals = completedMeals
		existing.ProgressValue = score
		if err := s.performanceRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil

	case errors.Is(err, repository.ErrNotFound):
		record := &domain.DailyPerformance{
			TraineeID:          traineeID,
			Date:               day,
			CompletedExercises: completedExercises,
			CompletedMeals:     completedMeals,
			ProgressValue:      score,
		}
		if _, err := s.performanceRepo.Create(ctx, record); err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				// A concurrent upsert inserted the row between our read and
				// write. Last write wins: re-read and overwrite.
				return s.overwriteExisting(ctx, traineeID, day, completedExercises, completedMeals, score)
			}
			return nil, err
		}
		return record, nil

	default:
		return nil, err
	}
}

func (s *progressService) overwriteExisting(ctx context.Context, traineeID string, day time.Time, completedExercises, completedMeals, score int) (*domain.DailyPerformance, error) {
	existing, err := s.performanceRepo.GetByTraineeAndDate(ctx, traineeID, day)
	if err != nil {
		return nil, err
	}
	existing.CompletedExercises = completedExercises
	existing.CompletedMeals = completedMeals
	existing.ProgressValue = score
	if err := s.performanceRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *progressService) GetWeeklySeries(ctx context.Context, traineeID string, referenceDate time.Time) (*domain.WeeklyPerformanceSeries, error) {
	if _, err := uuid.Parse(traineeID); err != nil {
		return nil, ErrInvalidTraineeID
	}

	dates := domain.TrailingDates(referenceDate, 7)

	records, err := s.performanceRepo.GetByTraineeAndDates(ctx, traineeID, dates)
	if err != nil {
		return nil, err
	}

	byDate := make(map[time.Time]domain.DailyPerformance, len(records))
	for _, record := range records {
		byDate[domain.DateOnly(record.Date)] = record
	}

	entries := make([]domain.WeeklyPerformanceEntry, 0, len(dates))
	for _, date := range dates {
		entry := domain.WeeklyPerformanceEntry{
			Day:  domain.DayName(date),
			Date: date,
		}
		if record, ok := byDate[date]; ok {
			entry.CompletedExercises = record.CompletedExercises
			entry.CompletedMeals = record.CompletedMeals
			entry.ProgressValue = record.ProgressValue
		}
		entries = append(entries, entry)
	}

	// Peak entry: highest progress value, ties broken toward the earliest
	// date. Entries are most-recent-first, so an equal value seen later in
	// the scan carries an earlier date and takes over.
	peak := entries[0]
	for _, entry := range entries[1:] {
		if entry.ProgressValue > peak.ProgressValue ||
			(entry.ProgressValue == peak.ProgressValue && entry.Date.Before(peak.Date)) {
			peak = entry
		}
	}

	return &domain.WeeklyPerformanceSeries{
		Entries: entries,
		Peak:    peak,
	}, nil
}
