package services

import (
	"context"
	"time"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
)

// SessionService logs workout sessions, snapshotting the calorie burn derived
// from the exercise's catalog estimate at log time.
type SessionService struct {
	sessions  repository.SessionRepository
	exercises repository.ExerciseRepository
	nutrition *NutritionService
}

func NewSessionService(sessions repository.SessionRepository, exercises repository.ExerciseRepository, nutrition *NutritionService) *SessionService {
	return &SessionService{sessions: sessions, exercises: exercises, nutrition: nutrition}
}

func (s *SessionService) LogSession(ctx context.Context, userID, exerciseID uint, durationMins int, performedAt time.Time) (*models.ExerciseSession, error) {
	if durationMins <= 0 {
		return nil, apperrors.New(apperrors.TypeValidation, "INVALID_DURATION", "duration must be positive")
	}
	exercise, err := s.exercises.FindByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	burned, err := s.nutrition.CaloriesBurned(*exercise, durationMins)
	if err != nil {
		return nil, err
	}

	session := &models.ExerciseSession{
		UserID:         userID,
		ExerciseID:     exerciseID,
		DurationMins:   durationMins,
		CaloriesBurned: burned,
		PerformedAt:    performedAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) ListRecent(ctx context.Context, userID uint, limit int) ([]models.ExerciseSession, error) {
	return s.sessions.ListRecent(ctx, userID, limit)
}
