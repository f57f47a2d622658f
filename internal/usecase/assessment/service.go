package assessment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/repository"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
	"github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
)

// Service defines assessment methods
type Service interface {
	ListQuestions() []Question
	Complete(ctx context.Context, userID uuid.UUID, answers entities.AssessmentAnswers) (*entities.AssessmentResult, error)
	GetResult(ctx context.Context, userID uuid.UUID) (*entities.AssessmentResult, error)
}

type assessmentService struct {
	assessmentRepo *repository.AssessmentRepository
	userRepo       *repository.UserRepository
	moodClient     *moodapi.Client
	logger         *zap.Logger
}

// NewAssessmentService constructs a new assessment service
func NewAssessmentService(
	assessmentRepo *repository.AssessmentRepository,
	userRepo *repository.UserRepository,
	moodClient *moodapi.Client,
	logger *zap.Logger,
) Service {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		userRepo:       userRepo,
		moodClient:     moodClient,
		logger:         logger,
	}
}

// ListQuestions returns the fixed question bank
func (s *assessmentService) ListQuestions() []Question {
	return Questions
}

// Complete scores a full answer set, runs the prose summary through
// text analysis, and stores the result. Completing the assessment also
// marks the user's onboarding flags. Scoring errors fail fast; a text
// analysis provider failure is masked with a mock so completion never
// blocks on the provider.
func (s *assessmentService) Complete(ctx context.Context, userID uuid.UUID, answers entities.AssessmentAnswers) (*entities.AssessmentResult, error) {
	result, err := Score(userID, answers, time.Now())
	if err != nil {
		return nil, err
	}

	textAnalysis, err := s.moodClient.AnalyzeText(ctx, Summary(result))
	if err != nil {
		s.logger.Warn("text analysis provider failed, substituting mock",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		textAnalysis = analysis.MockTextAnalysis()
	}
	if raw, err := json.Marshal(textAnalysis); err == nil {
		result.TextAnalysis = datatypes.JSON(raw)
	}

	if err := s.assessmentRepo.Upsert(ctx, result); err != nil {
		return nil, err
	}

	if err := s.markOnboardingComplete(ctx, userID); err != nil {
		s.logger.Warn("failed to update onboarding flags", zap.Error(err))
	}

	return result, nil
}

// markOnboardingComplete flips the user's welcome and assessment flags
func (s *assessmentService) markOnboardingComplete(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.HasCompletedAssessment = true
	user.HasCompletedWelcome = true
	return s.userRepo.Update(ctx, user)
}

// GetResult returns a user's stored assessment result
func (s *assessmentService) GetResult(ctx context.Context, userID uuid.UUID) (*entities.AssessmentResult, error) {
	return s.assessmentRepo.GetByUser(ctx, userID)
}
