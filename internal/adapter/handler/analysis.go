package handler

import (
	"io"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	analysisuse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
)

// Analysis handles voice-analysis endpoints
type Analysis struct {
	svc    analysisuse.Service
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysisuse.Service, logger *zap.Logger) *Analysis {
	return &Analysis{svc: svc, logger: logger}
}

// Analyze runs the voice-analysis pipeline on an uploaded clip
func (h *Analysis) Analyze(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrNoAudioFile())
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.svc.AnalyzeVoice(c.Request().Context(), userID, fileHeader.Filename, audio, contentType)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrAnalysisFailed(err))
	}
	return HandleSuccess(h.logger, c, result)
}

// History returns the user's full analysis history
func (h *Analysis) History(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	history, err := h.svc.History(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, history)
}

// ClearHistory wipes the user's analysis history
func (h *Analysis) ClearHistory(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	if err := h.svc.ClearHistory(c.Request().Context(), userID); err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"status": "cleared"})
}
