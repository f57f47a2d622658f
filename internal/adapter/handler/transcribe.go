package handler

import (
	stdErrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/dto/transcribe"
	transcriptionuse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/transcription"
)

// Transcribe handles the speech-to-text proxy endpoints. These bypass
// the standard response envelope: the recording widget expects the
// {success, transcript, analysis, metadata} shape exactly.
type Transcribe struct {
	svc    transcriptionuse.Service
	logger *zap.Logger
}

// NewTranscribeHandler creates a new transcription handler
func NewTranscribeHandler(svc transcriptionuse.Service, logger *zap.Logger) *Transcribe {
	return &Transcribe{svc: svc, logger: logger}
}

// Handle proxies an audio upload to the speech-to-text provider
func (h *Transcribe) Handle(c echo.Context) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		// No upstream call is made without a file
		return c.JSON(http.StatusBadRequest, transcribe.Fail("No audio file provided"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, transcribe.Fail("Failed to read audio file"))
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, transcribe.Fail("Failed to read audio file"))
	}

	result, err := h.svc.Transcribe(c.Request().Context(), fileHeader.Filename, audio)
	if err != nil {
		var appErr errors.AppError
		if stdErrors.As(err, &appErr) {
			h.logger.Error("transcription failed",
				zap.Int("status", appErr.HTTPCode),
				zap.Error(err))
			return c.JSON(appErr.HTTPCode, transcribe.Fail(appErr.Message))
		}
		h.logger.Error("transcription failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, transcribe.Fail(err.Error()))
	}

	return c.JSON(http.StatusOK, transcribe.OK(result))
}

// Health reports proxy liveness and provider key presence
func (h *Transcribe) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, transcribe.Health{
		Status:        "healthy",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		APIConfigured: h.svc.Configured(),
	})
}
