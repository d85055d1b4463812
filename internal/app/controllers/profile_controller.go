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

// ProfileController handles the student's profile screen.
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, logger: logger}
}

// View returns the profile
// @Summary Profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.ProfileView}
// @Router /profile [get]
func (c *ProfileController) View(ctx *gin.Context) {
	view, err := c.profileService.View(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// Edit changes the personal information buffer
// @Summary Edit personal information
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PersonalInfoRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=services.ProfileView}
// @Router /profile/personal [put]
func (c *ProfileController) Edit(ctx *gin.Context) {
	var req dto.PersonalInfoRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	view, err := c.profileService.Edit(middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

func (c *ProfileController) Save(ctx *gin.Context) {
	msg, err := c.profileService.Save(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msg, nil))
}

func (c *ProfileController) Reset(ctx *gin.Context) {
	view, err := c.profileService.Reset(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// UploadPicture replaces the profile picture
// @Summary Upload profile picture
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "JPEG, PNG or GIF"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Please upload only JPG, PNG, or GIF files."
// @Router /profile/picture [post]
func (c *ProfileController) UploadPicture(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Please choose a picture to upload.").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	msg, url, err := c.profileService.UploadPicture(middleware.SessionID(ctx), fh)
	if err != nil {
		c.logger.Warn().Err(err).Str("filename", fh.Filename).Msg("Profile picture rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msg, gin.H{"avatar": url}))
}

// SupportController serves the FAQ and the visa guides.
type SupportController struct {
	support *services.SupportService
	visa    *services.VisaService
}

// NewSupportController creates a new SupportController
func NewSupportController(support *services.SupportService, visa *services.VisaService) *SupportController {
	return &SupportController{support: support, visa: visa}
}

// Support returns the FAQ filtered by the search query
// @Summary Support center
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param search query string false "Text searched in questions and answers"
// @Success 200 {object} dto.APIResponse{data=services.SupportPage}
// @Router /support [get]
func (c *SupportController) Support(ctx *gin.Context) {
	page, err := c.support.Page(middleware.SessionID(ctx), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

// Visa returns the guide of a visa path
// @Summary Visa and immigration guide
// @Tags support
// @Produce json
// @Security BearerAuth
// @Param path query string false "visit or vitas"
// @Success 200 {object} dto.APIResponse{data=services.VisaPage}
// @Router /visa [get]
func (c *SupportController) Visa(ctx *gin.Context) {
	page, err := c.visa.Page(middleware.SessionID(ctx), models.VisaPath(ctx.Query("path")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}
