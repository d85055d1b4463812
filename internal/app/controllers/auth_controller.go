// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/middleware"
)

// SessionCookie describes the cookie that carries the session token for
// browser clients.
type SessionCookie struct {
	Name   string
	MaxAge int
	Secure bool
}

func (c SessionCookie) set(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Name, token, c.MaxAge, "/", "", c.Secure, true)
}

func (c SessionCookie) clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.Name, "", -1, "/", "", c.Secure, true)
}

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	cookie      SessionCookie
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookie SessionCookie, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// Login handles the login form
// @Summary Log in
// @Description Opens a session with the student demo identity. The credentials are required but never checked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login form"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Email or password missing"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tokenResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.cookie.set(ctx, tokenResponse.AccessToken)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokenResponse))
}

// DemoLogin handles the one-click demo buttons
// @Summary Demo login
// @Description Opens a session with the demo identity of a role.
// @Tags auth
// @Produce json
// @Param role path string true "student, academic_admin or international_admin"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Unknown role"
// @Router /auth/demo/{role} [post]
func (c *AuthController) DemoLogin(ctx *gin.Context) {
	role := models.Role(ctx.Param("role"))

	tokenResponse, err := c.authService.DemoLogin(ctx.Request.Context(), role)
	if err != nil {
		c.logger.Warn().Err(err).Str("role", string(role)).Msg("Demo login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.cookie.set(ctx, tokenResponse.AccessToken)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(tokenResponse))
}

// Logout closes the session
// @Summary Log out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Logged out"
// @Failure 401 {object} dto.ErrorResponse "No active session"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(middleware.SessionID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.cookie.clear(ctx)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out", nil))
}
