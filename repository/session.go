package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leonelalz/nutritrack-api-sub000/models"
)

type GormSessionRepository struct{ db *gorm.DB }

func NewSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

func (r *GormSessionRepository) Create(ctx context.Context, session *models.ExerciseSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *GormSessionRepository) ListRecent(ctx context.Context, userID uint, limit int) ([]models.ExerciseSession, error) {
	if limit <= 0 {
		limit = 10
	}
	var list []models.ExerciseSession
	err := r.db.WithContext(ctx).
		Preload("Exercise").
		Where("user_id = ?", userID).
		Order("performed_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
