package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/app/services"
	"github.com/alumnet/api/internal/middleware"
)

// EventController handles events and registrations
type EventController struct {
	eventService *services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// ListEvents handles GET /events
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Events retrieved successfully", events))
}

// Register handles POST /student/events/register
func (c *EventController) Register(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.RegisterEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid event registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: event_id is required"))
		return
	}

	if err := c.eventService.Register(ctx.Request.Context(), userID, req.EventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Registered for event successfully"))
}

// Unregister handles DELETE /student/events/unregister/:eventId
func (c *EventController) Unregister(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	eventID, ok := parseIDParam(ctx, "eventId")
	if !ok {
		return
	}

	if err := c.eventService.Unregister(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Unregistered from event successfully"))
}

// ListRegistered handles GET /student/events
func (c *EventController) ListRegistered(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	events, err := c.eventService.ListRegistered(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Registered events retrieved successfully", events))
}

// CreateEvent handles POST /alumni/events/create
func (c *EventController) CreateEvent(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid event creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: event_name, date and location are required"))
		return
	}

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("eventId", event.EventID).Int64("organizerId", userID).Msg("Event created")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse("Event created successfully", event))
}

// ListOwnEvents handles GET /alumni/events
func (c *EventController) ListOwnEvents(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	events, err := c.eventService.ListOwnEvents(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Events retrieved successfully", events))
}

// UpdateEvent handles PUT /alumni/events/:eventId/update
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	eventID, ok := parseIDParam(ctx, "eventId")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid event update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	if err := c.eventService.UpdateEvent(ctx.Request.Context(), userID, eventID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event updated successfully"))
}

// DeleteEvent handles DELETE /alumni/events/:eventId/delete
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	eventID, ok := parseIDParam(ctx, "eventId")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), userID, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted successfully"))
}
