package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/middleware"
)

// DashboardController serves both dashboards and the announcement editor.
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

// StudentDashboard renders the student dashboard
// @Summary Student dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param month query string false "YYYY-MM, prev, next or today"
// @Success 200 {object} dto.APIResponse{data=services.StudentDashboardView}
// @Failure 409 {object} dto.ErrorResponse "Dashboard is not the current screen"
// @Router /dashboard/student [get]
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	var query dto.CalendarQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	view, err := c.dashboardService.StudentDashboard(middleware.SessionID(ctx), query.Month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// AdminDashboard renders the administrator dashboard
// @Summary Administrator dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param month query string false "YYYY-MM, prev, next or today"
// @Success 200 {object} dto.APIResponse{data=services.AdminDashboardView}
// @Router /dashboard/admin [get]
func (c *DashboardController) AdminDashboard(ctx *gin.Context) {
	var query dto.CalendarQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	view, err := c.dashboardService.AdminDashboard(middleware.SessionID(ctx), query.Month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// CreateAnnouncement adds an announcement to the shared list
// @Summary Create announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnnouncementRequest true "Announcement"
// @Success 201 {object} dto.APIResponse{data=models.Announcement}
// @Failure 400 {object} dto.ErrorResponse "Title and message are required"
// @Failure 403 {object} dto.ErrorResponse "Not the academic office"
// @Router /announcements [post]
func (c *DashboardController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	created, err := c.dashboardService.CreateAnnouncement(ctx.Request.Context(), middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateAnnouncement edits an announcement
// @Summary Update announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param request body dto.AnnouncementRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Announcement}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [put]
func (c *DashboardController) UpdateAnnouncement(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	updated, err := c.dashboardService.UpdateAnnouncement(ctx.Request.Context(), middleware.SessionID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteAnnouncement removes an announcement
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param confirm query bool false "Must be true to delete"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Confirmation required"
// @Router /announcements/{id} [delete]
func (c *DashboardController) DeleteAnnouncement(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.dashboardService.DeleteAnnouncement(ctx.Request.Context(), middleware.SessionID(ctx), id, middleware.Confirmed(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Str("announcementID", id).Msg("Announcement removed")
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Announcement deleted", nil))
}
