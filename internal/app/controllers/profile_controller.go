package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/hooplannedthis/api/internal/app/auth"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/middleware"
)

// ProfileController serves the caller's own member row
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile returns the caller's profile
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Member session required"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	memberID, err := appauth.FromGin(ctx).RequireMember()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	profile, err := c.profileService.GetProfile(ctx, memberID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpsertProfile writes the caller's profile
// @Summary Create or update my profile
// @Description The id and email come from the session token
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertProfileRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Member session required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me [put]
func (c *ProfileController) UpsertProfile(ctx *gin.Context) {
	ac := appauth.FromGin(ctx)
	memberID, err := ac.RequireMember()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpsertProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	profile, err := c.profileService.UpsertProfile(ctx, memberID, ac.Email, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UploadProfilePhoto replaces the caller's photo
// @Summary Upload my profile photo
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoUploadResponse} "Photo uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing photo"
// @Failure 401 {object} dto.ErrorResponse "Member session required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/photo [post]
func (c *ProfileController) UploadProfilePhoto(ctx *gin.Context) {
	memberID, err := appauth.FromGin(ctx).RequireMember()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
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

	result, err := c.profileService.UploadProfilePhoto(ctx, memberID, photo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetMyCommittee returns the caller's committee and teammates
// @Summary Get my committee
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MyCommitteeResponse} "Committee retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Member session required"
// @Failure 404 {object} dto.ErrorResponse "Not assigned to a committee"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/committee [get]
func (c *ProfileController) GetMyCommittee(ctx *gin.Context) {
	memberID, err := appauth.FromGin(ctx).RequireMember()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	committee, err := c.profileService.GetMyCommittee(ctx, memberID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(committee))
}
