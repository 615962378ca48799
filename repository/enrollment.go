package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
)

type GormEnrollmentRepository struct{ db *gorm.DB }

func NewEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

func (r *GormEnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormEnrollmentRepository) FindByID(ctx context.Context, id uint) (*models.Enrollment, error) {
	var e models.Enrollment
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("enrollment", id)
		}
		return nil, err
	}
	return &e, nil
}

func (r *GormEnrollmentRepository) ListByUser(ctx context.Context, userID uint) ([]models.Enrollment, error) {
	var list []models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *GormEnrollmentRepository) FindLive(ctx context.Context, userID uint, kind models.EnrollmentKind) (*models.Enrollment, error) {
	var e models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND status IN ?",
			userID, kind, []models.EnrollmentStatus{models.StatusActive, models.StatusPaused}).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormEnrollmentRepository) ListOverlapping(ctx context.Context, userID uint, kind models.EnrollmentKind, start, end time.Time) ([]models.Enrollment, error) {
	var list []models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND status IN ? AND start_date <= ? AND end_date >= ?",
			userID, kind,
			[]models.EnrollmentStatus{models.StatusActive, models.StatusPaused},
			end, start).
		Find(&list).Error
	return list, err
}

func (r *GormEnrollmentRepository) ListActive(ctx context.Context) ([]models.Enrollment, error) {
	var list []models.Enrollment
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Find(&list).Error
	return list, err
}

func (r *GormEnrollmentRepository) Transition(ctx context.Context, id uint, fn func(*models.Enrollment) error) (*models.Enrollment, error) {
	var e models.Enrollment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&e, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("enrollment", id)
			}
			return err
		}
		if err := fn(&e); err != nil {
			return err
		}
		return tx.Save(&e).Error
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}
