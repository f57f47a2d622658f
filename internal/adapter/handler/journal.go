package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/errors"
	journaldto "github.com/mindvoice-team/mindvoice-backend/internal/adapter/dto/journal"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	journaluse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/journal"
)

// Journal handles journal endpoints
type Journal struct {
	svc    journaluse.Service
	logger *zap.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(svc journaluse.Service, logger *zap.Logger) *Journal {
	return &Journal{svc: svc, logger: logger}
}

// CreateEntry saves a text entry
func (h *Journal) CreateEntry(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req journaldto.CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	entry, err := h.svc.CreateTextEntry(c.Request().Context(), userID, req.Title, req.Text, req.Mood)
	if err != nil {
		if stdErrors.Is(err, entities.ErrEmptyEntryText) {
			return HandleError(h.logger, c, errors.ErrEmptyJournalEntry())
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, entry)
}

// CreateVoiceNote saves a voice note
func (h *Journal) CreateVoiceNote(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req journaldto.CreateVoiceNoteRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	entry, err := h.svc.CreateVoiceNote(c.Request().Context(), userID, req.Title, req.Duration)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, entry)
}

// List returns the user's entries newest first
func (h *Journal) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	entries, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, entries)
}

// Insights returns the aggregated journal overview
func (h *Journal) Insights(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	report, err := h.svc.Insights(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, report)
}
