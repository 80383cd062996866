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

// AlumniController handles the alumni self profile and the public directory
type AlumniController struct {
	alumniService *services.AlumniService
	logger        zerolog.Logger
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService *services.AlumniService, logger zerolog.Logger) *AlumniController {
	return &AlumniController{
		alumniService: alumniService,
		logger:        logger,
	}
}

// GetProfile handles GET /alumni/profile
func (c *AlumniController) GetProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	profile, err := c.alumniService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Alumni profile retrieved successfully", profile))
}

// UpdateProfile handles PUT /alumni/profile/update
func (c *AlumniController) UpdateProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAlumniProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid alumni profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request body"))
		return
	}

	profile, err := c.alumniService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Profile updated successfully", profile))
}

// GetDirectory handles GET /alumni
func (c *AlumniController) GetDirectory(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	filter := dto.AlumniDirectoryFilter{
		Search:         ctx.Query("search"),
		Company:        ctx.Query("company"),
		Department:     ctx.Query("department"),
		Degree:         ctx.Query("degree"),
		Location:       ctx.Query("location"),
		GraduationYear: ctx.Query("graduation_year"),
		Page:           page,
		Limit:          limit,
	}

	payload, err := c.alumniService.GetDirectory(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	writeRaw(ctx, payload)
}

// GetFilterOptions handles GET /alumni/filter-options
func (c *AlumniController) GetFilterOptions(ctx *gin.Context) {
	payload, err := c.alumniService.GetFilterOptions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	writeRaw(ctx, payload)
}

// GetYearStats handles GET /alumni/year-stats
func (c *AlumniController) GetYearStats(ctx *gin.Context) {
	payload, err := c.alumniService.GetYearStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	writeRaw(ctx, payload)
}
