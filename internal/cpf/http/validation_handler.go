// Package http provides the gin handler that exposes CPF validation.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/validacpf/internal/cpf/http/dto"
	cpfUseCase "github.com/allisson/validacpf/internal/cpf/usecase"
	"github.com/allisson/validacpf/internal/httputil"
)

// ValidationHandler adapts ValidationUseCase to HTTP.
type ValidationHandler struct {
	validationUseCase cpfUseCase.ValidationUseCase
	logger            *slog.Logger
}

// NewValidationHandler creates a new validation handler.
func NewValidationHandler(
	validationUseCase cpfUseCase.ValidationUseCase,
	logger *slog.Logger,
) *ValidationHandler {
	return &ValidationHandler{
		validationUseCase: validationUseCase,
		logger:            logger,
	}
}

// ValidateHandler validates the CPF in the request body.
// POST /v1/cpf/validate
//
// Returns 400 when the body is malformed, the Cpf field is missing, or the
// CPF is invalid (the rejection reason is reported in "code"). Returns 200
// with the masked CPF when it is valid.
func (h *ValidationHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, dto.MessageMissing, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleBadRequestGin(c, err, dto.MessageMissing, h.logger)
		return
	}

	validation, err := h.validationUseCase.Validate(c.Request.Context(), *req.Cpf)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !validation.Valid() {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{
			Error:   "invalid_cpf",
			Message: dto.MessageInvalid,
			Code:    validation.Reason.String(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationToResponse(validation))
}
