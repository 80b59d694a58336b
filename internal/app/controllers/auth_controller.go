// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/middleware"
)

// Pinger reports database reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// AuthController handles the admin unlock and health checks
type AuthController struct {
	adminService services.AdminService
	db           Pinger
	logger       zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(adminService services.AdminService, db Pinger, logger zerolog.Logger) *AuthController {
	return &AuthController{
		adminService: adminService,
		db:           db,
		logger:       logger,
	}
}

// Unlock exchanges the admin password for an admin token
// @Summary Unlock admin access
// @Description Compares the password with the configured hash and returns a short-lived admin token. Send it as Bearer or in the X-Admin-Token header.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UnlockRequest true "Admin password"
// @Success 200 {object} dto.APIResponse{data=dto.UnlockResponse} "Admin access unlocked"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/unlock [post]
func (c *AuthController) Unlock(ctx *gin.Context) {
	var req dto.UnlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid unlock request payload")
		respondBindingError(ctx, err)
		return
	}

	resp, err := c.adminService.Unlock(ctx, req.Password)
	if err != nil {
		c.logger.Warn().Str("ip", ctx.ClientIP()).Msg("Admin unlock rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("ip", ctx.ClientIP()).Msg("Admin access unlocked")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// Health reports service status
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse} "Service healthy"
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse} "Database unreachable"
// @Router /health [get]
func (c *AuthController) Health(ctx *gin.Context) {
	if err := c.db.Ping(ctx); err != nil {
		c.logger.Error().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.APIResponse{
			Data:  dto.HealthResponse{Status: "degraded", Database: "unreachable"},
			Error: dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable"),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{Status: "ok", Database: "ok"}))
}
