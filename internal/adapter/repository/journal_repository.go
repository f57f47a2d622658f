package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// JournalRepository implements journal persistence using GORM
type JournalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{
		db: db,
	}
}

// Append stores a new journal entry
func (r *JournalRepository) Append(ctx context.Context, entry *entities.JournalEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// ListByUser returns a user's entries newest first, the order the
// journal view renders them in
func (r *JournalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.JournalEntry, error) {
	var entries []entities.JournalEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// DeleteAllForUser wipes a user's journal
func (r *JournalRepository) DeleteAllForUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.JournalEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete journal entries: %w", err)
	}
	return nil
}
