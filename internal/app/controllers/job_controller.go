package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/app/services"
	"github.com/alumnet/api/internal/middleware"
)

// JobController handles job postings and applications
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// ListJobs handles GET /jobs
func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.jobService.ListJobs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Jobs retrieved successfully", jobs))
}

// CreateJob handles POST /alumni/jobs
func (c *JobController) CreateJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid job creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: job_title, company and application_deadline are required"))
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("jobId", job.JobID).Int64("alumniId", userID).Msg("Job posted")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse("Job created successfully", job))
}

// ListOwnJobs handles GET /alumni/jobs
func (c *JobController) ListOwnJobs(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobs, err := c.jobService.ListOwnJobs(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Jobs retrieved successfully", jobs))
}

// UpdateJob handles PUT /alumni/jobs/:jobId
func (c *JobController) UpdateJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "jobId")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid job update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	if err := c.jobService.UpdateJob(ctx.Request.Context(), userID, jobID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Job updated successfully"))
}

// DeleteJob handles DELETE /alumni/jobs/:jobId
func (c *JobController) DeleteJob(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "jobId")
	if !ok {
		return
	}

	if err := c.jobService.DeleteJob(ctx.Request.Context(), userID, jobID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Job deleted successfully"))
}

// Apply handles POST /student/jobs/apply
func (c *JobController) Apply(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.ApplyJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid job application payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: job_id is required"))
		return
	}

	application, err := c.jobService.Apply(ctx.Request.Context(), userID, req.JobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse("Application submitted successfully", application))
}

// ListApplications handles GET /student/jobs/applications
func (c *JobController) ListApplications(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	applications, err := c.jobService.ListApplications(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Applications retrieved successfully", applications))
}

// ListApplicants handles GET /alumni/jobs/:jobId/applications
func (c *JobController) ListApplicants(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "jobId")
	if !ok {
		return
	}

	applicants, err := c.jobService.ListApplicants(ctx.Request.Context(), userID, jobID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Applicants retrieved successfully", applicants))
}

// UpdateApplicationStatus handles PUT /alumni/jobs/:jobId/applications/:applicationId/status
func (c *JobController) UpdateApplicationStatus(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	jobID, ok := parseIDParam(ctx, "jobId")
	if !ok {
		return
	}

	applicationID, ok := parseIDParam(ctx, "applicationId")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid application status payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: status is required"))
		return
	}

	if err := c.jobService.UpdateApplicationStatus(ctx.Request.Context(), userID, jobID, applicationID, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Application status updated successfully"))
}
