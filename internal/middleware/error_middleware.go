package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/logger"
)

// errorMapping is one row of the sentinel to HTTP table
type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// Checked in order; the first match wins
var errorMappings = []errorMapping{
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request"},
	{apperrors.ErrMemberOutOfCouncil, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Member does not belong to this council"},
	{apperrors.ErrAdvisorNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Advisor not found"},
	{apperrors.ErrCouncilNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Council not found"},
	{apperrors.ErrCommitteeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Committee not found"},
	{apperrors.ErrMemberNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Member not found"},
	{apperrors.ErrMemberUnassigned, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "You are not assigned to a committee"},
	{apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Event not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	{apperrors.ErrCouncilAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Council already exists"},
	{apperrors.ErrObjectExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "File already exists"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Conflict"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
}

// errorDetailFor maps err to a status and error detail. A CustomError's
// message replaces the default one; unknown errors keep their own text.
func errorDetailFor(err error) (int, *dto.ErrorDetail) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.message
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Message != "" {
			message = custom.Message
		}
		return m.status, dto.NewErrorDetail(m.code, message)
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, err.Error())
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithData(c, err, nil)
}

// HandleAPIErrorWithData responds like HandleAPIError and keeps data, e.g. a
// view that was rolled back
func HandleAPIErrorWithData(c *gin.Context, err error, data interface{}) {
	status, detail := errorDetailFor(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
	}
	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponseWithData(detail, data))
}

// RespondMutation writes a successful mutation. A partial success keeps the
// success status and data, with a warning naming the failed step.
func RespondMutation(c *gin.Context, status int, data interface{}, err error) {
	if err == nil {
		c.JSON(status, dto.NewSuccessResponse(data))
		return
	}

	var partial *apperrors.PartialSuccessError
	if errors.As(err, &partial) && data != nil {
		logger.Warn().Err(err).Str("path", c.FullPath()).Msg("Partial success")
		warning := dto.NewErrorDetail(dto.ErrorCodePartialSuccess, partial.Error()).
			WithSeverity(dto.ErrorSeverityWarning).
			WithField(partial.Step)
		c.JSON(status, dto.NewPartialSuccessResponse(data, warning))
		return
	}

	HandleAPIError(c, err)
}
