package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/middleware"
)

// CommitteeController handles committee membership
type CommitteeController struct {
	assignmentService services.AssignmentService
}

// NewCommitteeController creates a new CommitteeController
func NewCommitteeController(assignmentService services.AssignmentService) *CommitteeController {
	return &CommitteeController{
		assignmentService: assignmentService,
	}
}

// GetAssignments returns the committee's members and the unassigned members of its class
// @Summary Get committee assignments
// @Tags committees
// @Produce json
// @Param id path int true "Committee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentView} "Assignments retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid committee ID"
// @Failure 404 {object} dto.ErrorResponse "Committee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /committees/{id}/assignments [get]
func (c *CommitteeController) GetAssignments(ctx *gin.Context) {
	committeeID, ok := parseIDParam(ctx, "id", "Committee")
	if !ok {
		return
	}

	view, err := c.assignmentService.GetAssignments(ctx, committeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view))
}

// AssignMember puts a member on the committee
// @Summary Assign a member to a committee
// @Description Sets the member's committee and role (Chair or Member, default Member) and returns the reloaded view
// @Tags committees
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Committee ID" Format(int64) minimum(1)
// @Param request body dto.AssignMemberRequest true "Member and role"
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentView} "Member assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Committee or member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /committees/{id}/assignments [post]
func (c *CommitteeController) AssignMember(ctx *gin.Context) {
	committeeID, ok := parseIDParam(ctx, "id", "Committee")
	if !ok {
		return
	}

	var req dto.AssignMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	view, err := c.assignmentService.AssignMember(ctx, committeeID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(view))
}
