package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/services"
	"github.com/hooplannedthis/api/internal/middleware"
)

// EventController handles event-related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListEvents returns all events
// @Summary List events
// @Description Returns every event with its committee name, newest first
// @Tags events
// @Produce json
// @Security AdminToken
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Events retrieved successfully"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// CreateEvent creates an event
// @Summary Create an event
// @Description Status defaults to Draft; tags are comma-separated
// @Tags events
// @Accept json
// @Produce json
// @Security AdminToken
// @Param request body dto.EventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	event, err := c.eventService.CreateEvent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// UpdateEvent replaces an event
// @Summary Update an event
// @Description Replaces every editable field; a blank status keeps the stored one
// @Tags events
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param request body dto.EventRequest true "Event information"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Event")
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// UpdateEventStatus changes only the status of an event
// @Summary Update an event's status
// @Tags events
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param request body dto.EventStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id}/status [patch]
func (c *EventController) UpdateEventStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Event")
	if !ok {
		return
	}

	var req dto.EventStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	event, err := c.eventService.UpdateEventStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// DeleteEvent removes an event once confirmed
// @Summary Delete an event
// @Description Requires confirm=true
// @Tags events
// @Produce json
// @Security AdminToken
// @Param id path int true "Event ID" Format(int64) minimum(1)
// @Param confirm query bool true "Confirms the deletion"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Event deleted"
// @Failure 400 {object} dto.ErrorResponse "Deletion not confirmed"
// @Failure 403 {object} dto.ErrorResponse "Admin access is locked"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "Event")
	if !ok {
		return
	}

	confirmed, _ := strconv.ParseBool(ctx.Query("confirm"))
	if err := c.eventService.DeleteEvent(ctx, id, confirmed); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event deleted"}))
}
