package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooplannedthis/api/internal/app/controllers"
	"github.com/hooplannedthis/api/internal/middleware"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/metrics"
	"github.com/hooplannedthis/api/internal/pkg/websocket"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth      *controllers.AuthController
	Advisor   *controllers.AdvisorController
	Council   *controllers.CouncilController
	Committee *controllers.CommitteeController
	Role      *controllers.RoleController
	Event     *controllers.EventController
	Profile   *controllers.ProfileController
}

// Options are the non-controller pieces of the router
type Options struct {
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
	ChangeHandler  *websocket.Handler
	// UploadsDir is served under UploadsPath when set
	UploadsDir  string
	UploadsPath string
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, opts Options) {
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	if opts.ChangeHandler != nil {
		router.GET("/ws/changes", opts.ChangeHandler.HandleConnection)
	}
	if opts.UploadsDir != "" && opts.UploadsPath != "" {
		router.StaticFS(opts.UploadsPath, http.Dir(opts.UploadsDir))
	}

	authMiddleware := opts.AuthMiddleware

	// API version group; every request gets an authorization context
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.Authenticate())

	v1.GET("/health", c.Auth.Health)
	v1.POST("/admin/unlock", c.Auth.Unlock)

	// --- Read-only views ---
	v1.GET("/advisors", c.Advisor.ListAdvisors)
	v1.GET("/councils", c.Council.ListCouncils)
	v1.GET("/councils/name-preview", c.Council.PreviewName)
	v1.GET("/councils/:gradYear", c.Council.GetCouncil)
	v1.GET("/councils/:gradYear/committees", c.Council.ListCommittees)
	v1.GET("/councils/:gradYear/roles", c.Role.GetBoard)
	v1.GET("/committees/:id/assignments", c.Committee.GetAssignments)

	// --- Member session routes ---
	me := v1.Group("/me")
	me.Use(authMiddleware.RequireMember())
	{
		me.GET("", c.Profile.GetProfile)
		me.PUT("", c.Profile.UpsertProfile)
		me.POST("/photo", c.Profile.UploadProfilePhoto)
		me.GET("/committee", c.Profile.GetMyCommittee)
	}

	// --- Admin routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.POST("/advisors", c.Advisor.CreateAdvisor)
		admin.PUT("/advisors/:id", c.Advisor.UpdateAdvisor)
		admin.DELETE("/advisors/:id", c.Advisor.DeleteAdvisor)
		admin.POST("/advisors/:id/photo", c.Advisor.UploadAdvisorPhoto)

		admin.POST("/councils", c.Council.CreateCouncil)
		admin.PATCH("/councils/:gradYear", c.Council.UpdateCouncil)
		admin.POST("/councils/:gradYear/committees", c.Council.CreateCommittee)
		admin.PATCH("/councils/:gradYear/roles/:memberId/committee", c.Role.UpdateMemberCommittee)
		admin.PATCH("/councils/:gradYear/roles/:memberId/role", c.Role.UpdateMemberRole)

		admin.POST("/committees/:id/assignments", c.Committee.AssignMember)

		admin.GET("/events", c.Event.ListEvents)
		admin.POST("/events", c.Event.CreateEvent)
		admin.PUT("/events/:id", c.Event.UpdateEvent)
		admin.PATCH("/events/:id/status", c.Event.UpdateEventStatus)
		admin.DELETE("/events/:id", c.Event.DeleteEvent)
	}

	router.NoRoute(func(ctx *gin.Context) {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Route not found"))
	})
}
