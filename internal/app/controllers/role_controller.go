package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/roster"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/middleware"
)

// RoleController serves the combined committee and role board of a council
type RoleController struct {
	roleBoardService services.RoleBoardService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleBoardService services.RoleBoardService) *RoleController {
	return &RoleController{
		roleBoardService: roleBoardService,
	}
}

// respondBoard writes the board; on failure the rolled back board travels with the error
func respondBoard(ctx *gin.Context, board *roster.Board, err error) {
	if err != nil {
		if board == nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		middleware.HandleAPIErrorWithData(ctx, err, board)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(board))
}

// GetBoard returns the role board
// @Summary Get the role board
// @Description Committees of the council and every member of the graduation year with committee and role
// @Tags roles
// @Produce json
// @Param gradYear path int true "Graduation year" minimum(1900) maximum(2100)
// @Success 200 {object} dto.APIResponse{data=roster.Board} "Board retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid graduation year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /councils/{gradYear}/roles [get]
func (c *RoleController) GetBoard(ctx *gin.Context) {
	gradYear, ok := parseGradYearParam(ctx)
	if !ok {
		return
	}

	board, err := c.roleBoardService.GetBoard(ctx, gradYear)
	respondBoard(ctx, board, err)
}

// UpdateMemberCommittee moves a member to another committee
// @Summary Reassign a member's committee
// @Description A null committeeId unassigns the member. On failure the row is rolled back and the board is returned with the error.
// @Tags roles
// @Accept json
// @Produce json
// @Security AdminToken
// @Param gradYear path int true "Graduation year" minimum(1900) maximum(2100)
// @Param memberId path string true "Member ID" Format(uuid)
// @Param request body dto.UpdateMemberCommitteeRequest true "Target committee"
// @Success 200 {object} dto.APIResponse{data=roster.Board} "Member reassigned"
// @Failure 400 {object} dto.ErrorResponse{data=roster.Board} "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 500 {object} dto.ErrorResponse{data=roster.Board} "Update failed and was rolled back"
// @Router /councils/{gradYear}/roles/{memberId}/committee [patch]
func (c *RoleController) UpdateMemberCommittee(ctx *gin.Context) {
	gradYear, ok := parseGradYearParam(ctx)
	if !ok {
		return
	}
	memberID, ok := parseMemberIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMemberCommitteeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	board, err := c.roleBoardService.UpdateMemberCommittee(ctx, gradYear, memberID, req.CommitteeID)
	respondBoard(ctx, board, err)
}

// UpdateMemberRole sets a member's role
// @Summary Update a member's role
// @Description An empty role clears it. On failure the row is rolled back and the board is returned with the error.
// @Tags roles
// @Accept json
// @Produce json
// @Security AdminToken
// @Param gradYear path int true "Graduation year" minimum(1900) maximum(2100)
// @Param memberId path string true "Member ID" Format(uuid)
// @Param request body dto.UpdateMemberRoleRequest true "Role"
// @Success 200 {object} dto.APIResponse{data=roster.Board} "Role updated"
// @Failure 400 {object} dto.ErrorResponse{data=roster.Board} "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 500 {object} dto.ErrorResponse{data=roster.Board} "Update failed and was rolled back"
// @Router /councils/{gradYear}/roles/{memberId}/role [patch]
func (c *RoleController) UpdateMemberRole(ctx *gin.Context) {
	gradYear, ok := parseGradYearParam(ctx)
	if !ok {
		return
	}
	memberID, ok := parseMemberIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMemberRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	board, err := c.roleBoardService.UpdateMemberRole(ctx, gradYear, memberID, req.Role)
	respondBoard(ctx, board, err)
}
