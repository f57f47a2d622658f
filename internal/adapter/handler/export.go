package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mindvoice-team/mindvoice-backend/errors"
	"github.com/mindvoice-team/mindvoice-backend/internal/infrastructure/http/middleware"
	useruse "github.com/mindvoice-team/mindvoice-backend/internal/usecase/user"
)

// Export handles data export downloads
type Export struct {
	svc    useruse.Service
	logger *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(svc useruse.Service, logger *zap.Logger) *Export {
	return &Export{svc: svc, logger: logger}
}

// Download streams the requested snapshot as a JSON attachment
func (h *Export) Download(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	scope := useruse.ExportScope(c.Param("scope"))
	data, filename, err := h.svc.Export(c.Request().Context(), userID, scope)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}
