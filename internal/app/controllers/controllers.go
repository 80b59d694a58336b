package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/pkg/validation"
)

// respondBadRequest writes a 400 validation error with details
func respondBadRequest(ctx *gin.Context, message, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).WithDetails(details)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// respondBindingError converts a binding error into a 400 response
func respondBindingError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(ctx, "Invalid "+label+" ID", label+" ID must be a positive number")
		return 0, false
	}
	return id, true
}

func parseGradYearParam(ctx *gin.Context) (int, bool) {
	year, err := strconv.Atoi(ctx.Param("gradYear"))
	if err != nil || year < validation.MinYear || year > validation.MaxYear {
		respondBadRequest(ctx, "Invalid graduation year", "Graduation year must be a year between 1900 and 2100")
		return 0, false
	}
	return year, true
}

func parseMemberIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("memberId"))
	if err != nil {
		respondBadRequest(ctx, "Invalid member ID", "Member ID must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalYear reads an optional integer query parameter
func parseOptionalYear(ctx *gin.Context, name string) (*int, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &year, nil
}

// formUpload opens the named multipart file. A request without the file
// yields nil; close must always be called.
func formUpload(ctx *gin.Context, field string) (upload *services.FileUpload, closeFn func(), err error) {
	closeFn = func() {}
	if !strings.HasPrefix(ctx.ContentType(), "multipart/") {
		return nil, closeFn, nil
	}

	header, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, closeFn, nil
		}
		return nil, closeFn, err
	}
	return openUpload(header)
}

func openUpload(header *multipart.FileHeader) (*services.FileUpload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &services.FileUpload{
		Filename:    header.Filename,
		ContentType: contentType,
		Content:     file,
	}, func() { _ = file.Close() }, nil
}
