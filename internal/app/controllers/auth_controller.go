package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/app/services"
	"github.com/alumnet/api/internal/middleware"
)

// AuthController handles signup and signin
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /signup
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: name, email, password and role are required"))
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userId", user.UserID).Str("role", user.Role).Msg("User registered")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse("User registered successfully", user))
}

// Signin handles POST /signin
func (c *AuthController) Signin(ctx *gin.Context) {
	var req dto.SigninRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signin payload")
		ctx.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid request: email and password are required"))
		return
	}

	result, err := c.authService.Signin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse("Signin successful", result))
}
