package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/app/services"
	"github.com/alumnet/api/internal/middleware"
	"github.com/alumnet/api/internal/pkg/helpers"
)

// MentorshipController handles mentor profiles and the request workflow
type MentorshipController struct {
	mentorshipService *services.MentorshipService
	logger            zerolog.Logger
}

// NewMentorshipController creates a new MentorshipController
func NewMentorshipController(mentorshipService *services.MentorshipService, logger zerolog.Logger) *MentorshipController {
	return &MentorshipController{
		mentorshipService: mentorshipService,
		logger:            logger,
	}
}

// SetupMentorProfile handles POST /alumni/mentorship/setup
func (c *MentorshipController) SetupMentorProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.SetupMentorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid mentor setup payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: expertise is required"))
		return
	}

	mentor, created, err := c.mentorshipService.SetupMentorProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if created {
		ctx.JSON(http.StatusCreated, dto.NewDataResponse("Mentor profile created successfully", mentor))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse("Mentor profile updated successfully", mentor))
}

// GetOwnProfile handles GET /alumni/mentorship/profile
func (c *MentorshipController) GetOwnProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	profile, err := c.mentorshipService.GetOwnProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Mentor profile retrieved successfully", profile))
}

// ListAvailableMentors handles GET /student/mentorship/mentors
func (c *MentorshipController) ListAvailableMentors(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	payload, err := c.mentorshipService.ListAvailableMentors(ctx.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	writeRaw(ctx, payload)
}

// GetMentorPublicProfile handles GET /student/mentorship/mentors/:mentorId
func (c *MentorshipController) GetMentorPublicProfile(ctx *gin.Context) {
	mentorID, ok := parseIDParam(ctx, "mentorId")
	if !ok {
		return
	}

	payload, err := c.mentorshipService.GetPublicProfile(ctx.Request.Context(), mentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	writeRaw(ctx, payload)
}

// RequestMentorship handles POST /student/mentorship/request
func (c *MentorshipController) RequestMentorship(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.SendMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid mentorship request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: mentor_id is required"))
		return
	}

	created, err := c.mentorshipService.RequestMentorship(ctx.Request.Context(), userID, req.MentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("studentId", userID).
		Int64("mentorId", req.MentorID).
		Int64("requestId", created.RequestID).
		Msg("Mentorship request created")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse("Mentorship request sent successfully", created))
}

// RespondToRequest handles PUT /alumni/mentorship/request/:requestId/status
func (c *MentorshipController) RespondToRequest(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	requestID, ok := parseIDParam(ctx, "requestId")
	if !ok {
		return
	}

	var req dto.RespondMentorshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid mentorship response payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: status is required"))
		return
	}

	disabled, err := c.mentorshipService.RespondToRequest(ctx.Request.Context(), userID, requestID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if disabled {
		c.logger.Info().Int64("mentorId", userID).Msg("Mentor reached capacity, availability disabled")
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse("Mentorship request updated successfully", gin.H{
		"request_id":            requestID,
		"status":                req.Status,
		"availability_disabled": disabled,
	}))
}

// ListStudentRequests handles GET /student/mentorship/requests
func (c *MentorshipController) ListStudentRequests(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	requests, err := c.mentorshipService.ListRequestsForStudent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Mentorship requests retrieved successfully", requests))
}

// ListMentorRequests handles GET /alumni/mentorship/requests
func (c *MentorshipController) ListMentorRequests(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	requests, err := c.mentorshipService.ListRequestsForMentor(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Mentorship requests retrieved successfully", requests))
}
