package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
)

// ExportScope selects which slice of a user's data an export contains
type ExportScope string

const (
	ExportJournal  ExportScope = "journal"
	ExportAnalysis ExportScope = "analysis"
	ExportComplete ExportScope = "complete"
)

// Filename returns the download filename for the scope
func (s ExportScope) Filename() string {
	return "mindvoice-" + string(s) + "-export.json"
}

// Valid reports whether the scope is one of the three known values
func (s ExportScope) Valid() bool {
	switch s {
	case ExportJournal, ExportAnalysis, ExportComplete:
		return true
	}
	return false
}

// journalExport is the journal-only snapshot
type journalExport struct {
	JournalEntries []entities.JournalEntry `json:"journalEntries"`
	ExportDate     time.Time               `json:"exportDate"`
	ExportType     ExportScope             `json:"exportType"`
}

// analysisExport is the analysis-only snapshot; the assessment result
// is included because the dashboard treats both as one history
type analysisExport struct {
	AnalysisHistory   []entities.NormalizedResult `json:"analysisHistory"`
	AssessmentResults *entities.AssessmentResult  `json:"assessmentResults"`
	ExportDate        time.Time                   `json:"exportDate"`
	ExportType        ExportScope                 `json:"exportType"`
}

// completeExport is everything the account owns, minus the password
// (User marshals with the password field suppressed)
type completeExport struct {
	User              *entities.User              `json:"user"`
	AnalysisHistory   []entities.NormalizedResult `json:"analysisHistory"`
	AssessmentResults *entities.AssessmentResult  `json:"assessmentResults"`
	JournalEntries    []entities.JournalEntry     `json:"journalEntries"`
	ExportDate        time.Time                   `json:"exportDate"`
	ExportType        ExportScope                 `json:"exportType"`
}

// Export builds the requested snapshot as pretty-printed JSON along
// with its download filename
func (s *userService) Export(ctx context.Context, userID uuid.UUID, scope ExportScope) ([]byte, string, error) {
	if !scope.Valid() {
		return nil, "", apperrors.ErrInvalidExportScope(string(scope))
	}

	now := time.Now()
	var payload interface{}

	switch scope {
	case ExportJournal:
		entries, err := s.journalRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, "", apperrors.ErrInternal(err)
		}
		payload = journalExport{
			JournalEntries: entries,
			ExportDate:     now,
			ExportType:     scope,
		}

	case ExportAnalysis:
		history, assessment, err := s.loadAnalysisData(ctx, userID)
		if err != nil {
			return nil, "", err
		}
		payload = analysisExport{
			AnalysisHistory:   history,
			AssessmentResults: assessment,
			ExportDate:        now,
			ExportType:        scope,
		}

	case ExportComplete:
		user, err := s.GetByID(ctx, userID)
		if err != nil {
			return nil, "", err
		}
		history, assessment, err := s.loadAnalysisData(ctx, userID)
		if err != nil {
			return nil, "", err
		}
		entries, err := s.journalRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, "", apperrors.ErrInternal(err)
		}
		payload = completeExport{
			User:              user,
			AnalysisHistory:   history,
			AssessmentResults: assessment,
			JournalEntries:    entries,
			ExportDate:        now,
			ExportType:        scope,
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, "", apperrors.ErrInternal(err)
	}
	return data, scope.Filename(), nil
}

// loadAnalysisData fetches the analysis history and assessment result,
// tolerating a missing assessment
func (s *userService) loadAnalysisData(ctx context.Context, userID uuid.UUID) ([]entities.NormalizedResult, *entities.AssessmentResult, error) {
	history, err := s.analysisRepo.History(ctx, userID)
	if err != nil {
		return nil, nil, apperrors.ErrInternal(err)
	}

	assessment, err := s.assessmentRepo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, entities.ErrAssessmentNotFound) {
			return nil, nil, apperrors.ErrInternal(err)
		}
		assessment = nil
	}
	return history, assessment, nil
}
