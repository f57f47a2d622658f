package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/repository"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/external/moodapi"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/storage"
)

// Service defines voice-analysis orchestration methods
type Service interface {
	AnalyzeVoice(ctx context.Context, userID uuid.UUID, filename string, audio []byte, contentType string) (*entities.NormalizedResult, error)
	History(ctx context.Context, userID uuid.UUID) ([]entities.NormalizedResult, error)
	Latest(ctx context.Context, userID uuid.UUID) (*entities.NormalizedResult, error)
	ClearHistory(ctx context.Context, userID uuid.UUID) error
}

type analysisService struct {
	analysisRepo *repository.AnalysisRepository
	userRepo     *repository.UserRepository
	moodClient   *moodapi.Client
	audioStore   *storage.MinIOClient
	logger       *zap.Logger
}

// NewAnalysisService constructs a new analysis service. audioStore may
// be nil when clip retention is disabled.
func NewAnalysisService(
	analysisRepo *repository.AnalysisRepository,
	userRepo *repository.UserRepository,
	moodClient *moodapi.Client,
	audioStore *storage.MinIOClient,
	logger *zap.Logger,
) Service {
	return &analysisService{
		analysisRepo: analysisRepo,
		userRepo:     userRepo,
		moodClient:   moodClient,
		audioStore:   audioStore,
		logger:       logger,
	}
}

// AnalyzeVoice runs the full voice-analysis pipeline: optional clip
// retention, the two-step provider call, normalization, link
// extraction, and persistence. Provider failure is not an error to the
// caller: a mock result is synthesized, stored, and returned so the
// dashboard always has something to show.
func (s *analysisService) AnalyzeVoice(ctx context.Context, userID uuid.UUID, filename string, audio []byte, contentType string) (*entities.NormalizedResult, error) {
	now := time.Now()

	if s.audioStore != nil {
		objectName := fmt.Sprintf("%s/%d-%s", userID, now.UnixMilli(), filename)
		if err := s.audioStore.UploadAudio(ctx, objectName, audio, contentType); err != nil {
			// Retention is best-effort; analysis proceeds without it
			s.logger.Warn("audio retention failed", zap.Error(err))
		}
	}

	result, err := s.runProviderPipeline(ctx, filename, audio, now)
	if err != nil {
		s.logger.Warn("voice analysis provider failed, substituting mock result",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		result = MockResult(now)
	}
	result.UserID = userID

	// Results are appended in completion order, not submission order.
	// A slow early upload may land after a fast later one; IDs keep
	// their creation timestamps either way.
	if err := s.analysisRepo.Append(ctx, result); err != nil {
		return nil, err
	}

	if len(result.RecommendedVideos) > 0 {
		if err := s.updateLatestRecommendations(ctx, userID, result.RecommendedVideos); err != nil {
			s.logger.Warn("failed to update latest recommendations", zap.Error(err))
		}
	}

	return result, nil
}

// runProviderPipeline executes the upload and finalize calls and
// reduces the envelope to a normalized result
func (s *analysisService) runProviderPipeline(ctx context.Context, filename string, audio []byte, now time.Time) (*entities.NormalizedResult, error) {
	intermediate, err := s.moodClient.UploadAudio(ctx, filename, audio)
	if err != nil {
		return nil, fmt.Errorf("upload step failed: %w", err)
	}

	envelope, err := s.moodClient.Finalize(ctx, intermediate)
	if err != nil {
		return nil, fmt.Errorf("finalize step failed: %w", err)
	}

	result := Normalize(envelope, now)
	if envelope.RespJSON != nil {
		result.RecommendedVideos = ExtractRecommendations(envelope.RespJSON.Resp)
	}
	return result, nil
}

// updateLatestRecommendations mirrors the newest video list onto the
// user record for the dashboard's quick view
func (s *analysisService) updateLatestRecommendations(ctx context.Context, userID uuid.UUID, videos entities.VideoRecommendations) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.LatestRecommendedVideos = videos
	return s.userRepo.Update(ctx, user)
}

// History returns a user's full analysis history in insertion order
func (s *analysisService) History(ctx context.Context, userID uuid.UUID) ([]entities.NormalizedResult, error) {
	return s.analysisRepo.History(ctx, userID)
}

// Latest returns a user's most recent result
func (s *analysisService) Latest(ctx context.Context, userID uuid.UUID) (*entities.NormalizedResult, error) {
	return s.analysisRepo.Latest(ctx, userID)
}

// ClearHistory wipes a user's analysis history and any retained audio
func (s *analysisService) ClearHistory(ctx context.Context, userID uuid.UUID) error {
	if err := s.analysisRepo.DeleteAllForUser(ctx, userID); err != nil {
		return err
	}
	if s.audioStore != nil {
		if err := s.audioStore.DeleteUserAudio(ctx, userID.String()+"/"); err != nil {
			s.logger.Warn("failed to delete retained audio", zap.Error(err))
		}
	}
	return nil
}
