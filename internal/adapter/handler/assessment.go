package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/errors"
	assessmentdto "github.com/mindvoice-team/mindvoice-backend/internal/adapter/dto/assessment"
	"github.com/mindvoice-team/mindvoice-backend/internal/domain/entities"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	assessmentuse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/assessment"
)

// Assessment handles the screening questionnaire endpoints
type Assessment struct {
	svc    assessmentuse.Service
	logger *zap.Logger
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(svc assessmentuse.Service, logger *zap.Logger) *Assessment {
	return &Assessment{svc: svc, logger: logger}
}

// Questions returns the fixed question bank
func (h *Assessment) Questions(c echo.Context) error {
	return HandleSuccess(h.logger, c, h.svc.ListQuestions())
}

// Complete scores a submitted answer set
func (h *Assessment) Complete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	var req assessmentdto.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.svc.Complete(c.Request().Context(), userID, entities.AssessmentAnswers(req.Answers))
	if err != nil {
		return HandleError(h.logger, c, mapAssessmentError(err, len(req.Answers)))
	}
	return HandleSuccess(h.logger, c, result)
}

// Result returns the user's stored assessment result
func (h *Assessment) Result(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	result, err := h.svc.GetResult(c.Request().Context(), userID)
	if err != nil {
		if stdErrors.Is(err, entities.ErrAssessmentNotFound) {
			return HandleError(h.logger, c, errors.ErrNotFound("assessment result"))
		}
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, result)
}

// mapAssessmentError converts scoring sentinels to typed API errors
func mapAssessmentError(err error, got int) error {
	switch {
	case stdErrors.Is(err, entities.ErrIncompleteAnswers):
		return errors.ErrIncompleteAssessment(got, len(assessmentuse.Questions))
	case stdErrors.Is(err, entities.ErrAnswerOutOfRange):
		return errors.ErrInvalidAssessmentAnswer(err)
	}
	return err
}
