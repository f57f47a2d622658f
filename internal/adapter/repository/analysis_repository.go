package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// AnalysisRepository implements analysis-result persistence using GORM
type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{
		db: db,
	}
}

// Append stores a new result. Records are insert-only and keep their
// creation-time IDs even when persisted out of order.
func (r *AnalysisRepository) Append(ctx context.Context, result *entities.NormalizedResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to append analysis result: %w", err)
	}
	return nil
}

// History returns every result for a user in insertion order
func (r *AnalysisRepository) History(ctx context.Context, userID uuid.UUID) ([]entities.NormalizedResult, error) {
	var results []entities.NormalizedResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}
	return results, nil
}

// Latest returns the most recently appended result for a user
func (r *AnalysisRepository) Latest(ctx context.Context, userID uuid.UUID) (*entities.NormalizedResult, error) {
	var result entities.NormalizedResult
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to load latest analysis: %w", err)
	}
	return &result, nil
}

// DeleteAllForUser wipes a user's analysis history
func (r *AnalysisRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.NormalizedResult{}).Error; err != nil {
		return fmt.Errorf("failed to delete analysis history: %w", err)
	}
	return nil
}
