package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/middleware"
)

// CouncilController handles council operations and the committees scoped to a council
type CouncilController struct {
	councilService   services.CouncilService
	committeeService services.CommitteeService
}

// NewCouncilController creates a new CouncilController
func NewCouncilController(councilService services.CouncilService, committeeService services.CommitteeService) *CouncilController {
	return &CouncilController{
		councilService:   councilService,
		committeeService: committeeService,
	}
}

// ListCouncils returns all councils
// @Summary List councils
// @Description Returns every council ordered by graduation year
// @Tags councils
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CouncilResponse} "Councils retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /councils [get]
func (c *CouncilController) ListCouncils(ctx *gin.Context) {
	councils, err := c.councilService.ListCouncils(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(councils))
}

// GetCouncil returns the council of a graduation year
// @Summary Get a council
// @Tags councils
// @Produce json
// @Param gradYear path int true "Graduation year" minimum(1900) maximum(2100)
// @Success 200 {object} dto.APIResponse{data=dto.CouncilResponse} "Council retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid graduation year"
// @Failure 404 {object} dto.ErrorResponse "Council not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /councils/{gradYear} [get]
func (c *CouncilController) GetCouncil(ctx *gin.Context) {
	gradYear, ok := parseGradYearParam(ctx)
	if !ok {
		return
	}

	council, err := c.councilService.GetCouncil(ctx, gradYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(council))
}

// PreviewName derives the council name for a pair of years
// @Summary Preview a council name
// @Description Computes the display name from the graduation year and the fall or spring year. Nothing is stored.
// @Tags councils
// @Produce json
// @Param gradYear query int true "Graduation year"
// @Param fallYear query int false "Fall year of the academic year"
// @Param springYear query int false "Spring year of the academic year"
// @Success 200 {object} dto.APIResponse{data=dto.NamePreviewResponse} "Name computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid year"
// @Router /councils/name-preview [get]
func (c *CouncilController) PreviewName(ctx *gin.Context) {
	gradYear, err := strconv.Atoi(ctx.Query("gradYear"))
	if err != nil {
		respondBadRequest(ctx, "Invalid graduation year", "gradYear must be a number")
		return
	}
	fallYear, err := parseOptionalYear(ctx, "fallYear")
	if err != nil {
		respondBadRequest(ctx, "Invalid fall year", "fallYear must be a number")
		return
	}
	springYear, err := parseOptionalYear(ctx, "springYear")
	if err != nil {
		respondBadRequest(ctx, "Invalid spring year", "springYear must be a number")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.councilService.PreviewName(gradYear, fallYear, springYear)))
}

// CreateCouncil creates a council with an optional logo
// @Summary Create a council
// @Description Creates the council of a graduation year. Only one council may exist per graduation year.
// @Tags councils
// @Accept json,mpfd
// @Produce json
// @Security AdminToken
// @Param request body dto.CreateCouncilRequest true "Council information"
// @Param logo formData file false "Council logo"
// @Success 201 {object} dto.APIResponse{data=dto.CouncilResponse} "Council created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 409 {object} dto.ErrorResponse "A council for this class already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /councils [post]
func (c *CouncilController) CreateCouncil(ctx *gin.Context) {
	var req dto.CreateCouncilRequest
	if err := ctx.ShouldBind(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	logo, closeLogo, err := formUpload(ctx, "logo")
	if err != nil {
		respondBadRequest(ctx, "Invalid logo", err.Error())
		return
	}
	defer closeLogo()

	council, err := c.councilService.CreateCouncil(ctx, &req, logo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(council))
}

// UpdateCouncil edits the touched fields of a council
// @Summary Update a council
// @Description Writes only the fields present in the request. The graduation year cannot change; an empty advisorId clears the advisor.
// @Tags councils
// @Accept json,mpfd
// @Produce json
// @Security AdminToken
// @Param gradYear path int true "Graduation year" minimum(1900) maximum(2100)
// @Param request body dto.UpdateCouncilRequest true "Touched fields"
// @Param logo formData file false "Council logo"
// @Success 200 {object} dto.APIResponse{data=dto.CouncilResponse} "Council updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Council not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /councils/{gradYear} [patch]
func (c *CouncilController) UpdateCouncil(ctx *gin.Context) {
	gradYear, ok := parseGradYearParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCouncilRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBind(&req); err != nil {
			respondBindingError(ctx, err)
			return
		}
	}

	logo, closeLogo, err := formUpload(ctx, "logo")
	if err != nil {
		respondBadRequest(ctx, "Invalid logo", err.Error())
		return
	}
	defer closeLogo()

	council, err := c.councilService.UpdateCouncil(ctx, gradYear, &req, logo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(council))
}

// ListCommittees returns the committees of a council
// @Summary List committees of a council
// @Tags committees
// @Produce json
// @Param gradYear path int true "Graduation year" minimum(1900) maximum(2100)
// @Success 200 {object} dto.APIResponse{data=[]dto.CommitteeResponse} "Committees retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid graduation year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /councils/{gradYear}/committees [get]
func (c *CouncilController) ListCommittees(ctx *gin.Context) {
	gradYear, ok := parseGradYearParam(ctx)
	if !ok {
		return
	}

	committees, err := c.committeeService.ListCommittees(ctx, gradYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(committees))
}

// CreateCommittee adds a committee to a council
// @Summary Create a committee
// @Description Adds a committee to the council of the graduation year and returns the reloaded list
// @Tags committees
// @Accept json
// @Produce json
// @Security AdminToken
// @Param gradYear path int true "Graduation year" minimum(1900) maximum(2100)
// @Param request body dto.CreateCommitteeRequest true "Committee information"
// @Success 201 {object} dto.APIResponse{data=[]dto.CommitteeResponse} "Committee created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Council not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /councils/{gradYear}/committees [post]
func (c *CouncilController) CreateCommittee(ctx *gin.Context) {
	gradYear, ok := parseGradYearParam(ctx)
	if !ok {
		return
	}

	var req dto.CreateCommitteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	committees, err := c.committeeService.CreateCommittee(ctx, gradYear, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(committees))
}
