package journal

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/repository"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
)

// Service defines journal methods
type Service interface {
	CreateTextEntry(ctx context.Context, userID uuid.UUID, title, text, mood string) (*entities.JournalEntry, error)
	CreateVoiceNote(ctx context.Context, userID uuid.UUID, title, duration string) (*entities.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID) ([]entities.JournalEntry, error)
	Insights(ctx context.Context, userID uuid.UUID) (*InsightsReport, error)
}

type journalService struct {
	journalRepo *repository.JournalRepository
	moodClient  *moodapi.Client
	logger      *zap.Logger
}

// NewJournalService constructs a new journal service
func NewJournalService(
	journalRepo *repository.JournalRepository,
	moodClient *moodapi.Client,
	logger *zap.Logger,
) Service {
	return &journalService{
		journalRepo: journalRepo,
		moodClient:  moodClient,
		logger:      logger,
	}
}

// CreateTextEntry saves a text entry after running it through text
// analysis. Empty text is rejected before any provider call; provider
// failure is masked with a mock so saving never blocks on the
// provider.
func (s *journalService) CreateTextEntry(ctx context.Context, userID uuid.UUID, title, text, mood string) (*entities.JournalEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entities.ErrEmptyEntryText
	}

	textAnalysis, err := s.moodClient.AnalyzeText(ctx, text)
	if err != nil {
		s.logger.Warn("text analysis provider failed, substituting mock",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		textAnalysis = analysis.MockTextAnalysis()
	}

	entry := entities.NewTextEntry(userID, title, text, mood)
	if raw, err := json.Marshal(textAnalysis); err == nil {
		entry.Analysis = datatypes.JSON(raw)
	}

	if err := s.journalRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateVoiceNote saves a voice note. Notes carry a display duration
// only; the audio itself is not retained here.
func (s *journalService) CreateVoiceNote(ctx context.Context, userID uuid.UUID, title, duration string) (*entities.JournalEntry, error) {
	entry := entities.NewVoiceNote(userID, title, duration)
	if err := s.journalRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns a user's entries newest first
func (s *journalService) List(ctx context.Context, userID uuid.UUID) ([]entities.JournalEntry, error) {
	return s.journalRepo.ListByUser(ctx, userID)
}

// Insights aggregates a user's journal for the insights view
func (s *journalService) Insights(ctx context.Context, userID uuid.UUID) (*InsightsReport, error) {
	entries, err := s.journalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildInsights(entries), nil
}
