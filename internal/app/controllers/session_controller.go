package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/middleware"
)

// SessionController exposes the session's view, language and page chrome.
type SessionController struct {
	sessions *session.Manager
	shell    *services.ShellService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessions *session.Manager, shell *services.ShellService) *SessionController {
	return &SessionController{sessions: sessions, shell: shell}
}

// Shell returns the sidebar and header for the current session
// @Summary Current session
// @Tags session
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.ShellView}
// @Router /session [get]
func (c *SessionController) Shell(ctx *gin.Context) {
	shell, err := c.shell.Shell(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(shell))
}

// Navigate switches the session to a view
// @Summary Navigate
// @Description Requests a view. The screen it resolves to is mounted with fresh local state when it differs from the current one. Unknown or unreachable views resolve to the dashboard.
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NavigateRequest true "View"
// @Success 200 {object} dto.APIResponse{data=services.ShellView}
// @Router /session/view [put]
func (c *SessionController) Navigate(ctx *gin.Context) {
	var req dto.NavigateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	info, err := c.sessions.Navigate(ctx.Request.Context(), middleware.SessionID(ctx), req.View)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(services.BuildShell(info)))
}

// SetLanguage switches the UI language
// @Summary Switch language
// @Tags session
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LanguageRequest true "Language"
// @Success 200 {object} dto.APIResponse{data=services.ShellView}
// @Router /session/language [put]
func (c *SessionController) SetLanguage(ctx *gin.Context) {
	var req dto.LanguageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	info, err := c.sessions.SetLanguage(middleware.SessionID(ctx), models.Language(req.Language))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(services.BuildShell(info)))
}
