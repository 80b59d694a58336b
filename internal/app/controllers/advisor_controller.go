package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/middleware"
)

// AdvisorController handles advisor-related operations
type AdvisorController struct {
	advisorService services.AdvisorService
}

// NewAdvisorController creates a new AdvisorController
func NewAdvisorController(advisorService services.AdvisorService) *AdvisorController {
	return &AdvisorController{
		advisorService: advisorService,
	}
}

// ListAdvisors returns all advisors
// @Summary List advisors
// @Description Returns every advisor ordered by id, each with a resolved photo URL
// @Tags advisors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.AdvisorResponse} "Advisors retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /advisors [get]
func (c *AdvisorController) ListAdvisors(ctx *gin.Context) {
	advisors, err := c.advisorService.ListAdvisors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(advisors))
}

// CreateAdvisor creates an advisor with an optional photo
// @Summary Create an advisor
// @Description Creates an advisor. A failed photo upload keeps the advisor and returns a WARNING detail.
// @Tags advisors
// @Accept json,mpfd
// @Produce json
// @Security AdminToken
// @Param request body dto.AdvisorRequest true "Advisor information"
// @Param photo formData file false "Advisor photo"
// @Success 201 {object} dto.APIResponse{data=dto.AdvisorMutationResponse} "Advisor created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /advisors [post]
func (c *AdvisorController) CreateAdvisor(ctx *gin.Context) {
	var req dto.AdvisorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	photo, closePhoto, err := formUpload(ctx, "photo")
	if err != nil {
		respondBadRequest(ctx, "Invalid photo", err.Error())
		return
	}
	defer closePhoto()

	resp, err := c.advisorService.CreateAdvisor(ctx, &req, photo)
	middleware.RespondMutation(ctx, http.StatusCreated, resp, err)
}

// UpdateAdvisor replaces an advisor's fields
// @Summary Update an advisor
// @Description Replaces every field of an advisor, optionally with a new photo
// @Tags advisors
// @Accept json,mpfd
// @Produce json
// @Security AdminToken
// @Param id path int true "Advisor ID" Format(int64) minimum(1)
// @Param request body dto.AdvisorRequest true "Advisor information"
// @Param photo formData file false "Advisor photo"
// @Success 200 {object} dto.APIResponse{data=dto.AdvisorMutationResponse} "Advisor updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Advisor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /advisors/{id} [put]
func (c *AdvisorController) UpdateAdvisor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Advisor")
	if !ok {
		return
	}

	var req dto.AdvisorRequest
	if err := ctx.ShouldBind(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	photo, closePhoto, err := formUpload(ctx, "photo")
	if err != nil {
		respondBadRequest(ctx, "Invalid photo", err.Error())
		return
	}
	defer closePhoto()

	resp, err := c.advisorService.UpdateAdvisor(ctx, id, &req, photo)
	middleware.RespondMutation(ctx, http.StatusOK, resp, err)
}

// DeleteAdvisor removes an advisor
// @Summary Delete an advisor
// @Tags advisors
// @Produce json
// @Security AdminToken
// @Param id path int true "Advisor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AdvisorMutationResponse} "Advisor deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Advisor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /advisors/{id} [delete]
func (c *AdvisorController) DeleteAdvisor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Advisor")
	if !ok {
		return
	}

	resp, err := c.advisorService.DeleteAdvisor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UploadAdvisorPhoto replaces an advisor's photo
// @Summary Upload an advisor photo
// @Tags advisors
// @Accept mpfd
// @Produce json
// @Security AdminToken
// @Param id path int true "Advisor ID" Format(int64) minimum(1)
// @Param photo formData file true "Advisor photo"
// @Success 200 {object} dto.APIResponse{data=dto.AdvisorMutationResponse} "Photo updated"
// @Failure 400 {object} dto.ErrorResponse "Missing photo"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Advisor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /advisors/{id}/photo [post]
func (c *AdvisorController) UploadAdvisorPhoto(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Advisor")
	if !ok {
		return
	}

	photo, closePhoto, err := formUpload(ctx, "photo")
	if err != nil {
		respondBadRequest(ctx, "Invalid photo", err.Error())
		return
	}
	defer closePhoto()
	if photo == nil {
		respondBadRequest(ctx, "Invalid or missing file", "A multipart \"photo\" file is required")
		return
	}

	resp, err := c.advisorService.UploadAdvisorPhoto(ctx, id, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
