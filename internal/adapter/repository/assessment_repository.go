package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// AssessmentRepository implements assessment-result persistence using
// GORM. Each user keeps exactly one result; retaking the assessment
// replaces it.
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{
		db: db,
	}
}

// Upsert stores a result, replacing any previous one for the user
func (r *AssessmentRepository) Upsert(ctx context.Context, result *entities.AssessmentResult) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(result).Error; err != nil {
		return fmt.Errorf("failed to upsert assessment result: %w", err)
	}
	return nil
}

// GetByUser returns a user's assessment result
func (r *AssessmentRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*entities.AssessmentResult, error) {
	var result entities.AssessmentResult
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to load assessment result: %w", err)
	}
	return &result, nil
}

// DeleteForUser removes a user's assessment result
func (r *AssessmentRepository) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.AssessmentResult{}).Error; err != nil {
		return fmt.Errorf("failed to delete assessment result: %w", err)
	}
	return nil
}
