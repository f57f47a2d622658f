package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/adapter/presenter"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	analysisuse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/analysis"
)

// Dashboard serves the presentation-ready view of the latest analysis
type Dashboard struct {
	svc    analysisuse.Service
	logger *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc analysisuse.Service, logger *zap.Logger) *Dashboard {
	return &Dashboard{svc: svc, logger: logger}
}

// Overview returns the latest result reduced to display form
func (h *Dashboard) Overview(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	latest, err := h.svc.Latest(c.Request().Context(), userID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrAnalysisNotFound) {
			return HandleError(h.logger, c, errors.ErrAnalysisNotFound())
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, presenter.PresentDashboard(latest))
}

// Trend returns the rolling sentiment series
func (h *Dashboard) Trend(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	history, err := h.svc.History(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, presenter.PresentHistory(history))
}
