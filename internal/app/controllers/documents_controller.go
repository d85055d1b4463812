package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/middleware"
)

// DocumentsController handles the student's document screen.
type DocumentsController struct {
	documentsService services.DocumentsService
	logger           zerolog.Logger
}

// NewDocumentsController creates a new DocumentsController
func NewDocumentsController(documentsService services.DocumentsService, logger zerolog.Logger) *DocumentsController {
	return &DocumentsController{documentsService: documentsService, logger: logger}
}

// List returns the documents of a category
// @Summary List documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param category query string false "all or a document type"
// @Success 200 {object} dto.APIResponse{data=services.DocumentsPage}
// @Router /documents [get]
func (c *DocumentsController) List(ctx *gin.Context) {
	var query dto.DocumentQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	page, err := c.documentsService.List(middleware.SessionID(ctx), query.Category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

func (c *DocumentsController) Get(ctx *gin.Context) {
	doc, err := c.documentsService.Get(middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(doc))
}

// Upload stores a file and returns the draft document built from it
// @Summary Upload document file
// @Description Accepts PDF, JPEG or PNG up to the configured size. The returned draft is completed by Create.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file"
// @Success 200 {object} dto.APIResponse{data=models.Document}
// @Failure 400 {object} dto.ErrorResponse "Please upload only PDF, JPG, or PNG files."
// @Router /documents/upload [post]
func (c *DocumentsController) Upload(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Please choose a file to upload.").WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	draft, err := c.documentsService.Upload(middleware.SessionID(ctx), fh)
	if err != nil {
		c.logger.Warn().Err(err).Str("filename", fh.Filename).Msg("Document upload rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(draft))
}

// Create adds a document
// @Summary Add document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DocumentRequest true "Document"
// @Success 201 {object} dto.APIResponse{data=models.Document}
// @Failure 400 {object} dto.ErrorResponse "Please enter a document name."
// @Router /documents [post]
func (c *DocumentsController) Create(ctx *gin.Context) {
	var req dto.DocumentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	doc, err := c.documentsService.Create(middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(doc))
}

// Delete removes a document
// @Summary Delete document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param confirm query bool false "Must be true to delete"
// @Success 200 {object} dto.APIResponse
// @Router /documents/{id} [delete]
func (c *DocumentsController) Delete(ctx *gin.Context) {
	if err := c.documentsService.Delete(middleware.SessionID(ctx), ctx.Param("id"), middleware.Confirmed(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Document deleted", nil))
}

// Download answers with the download notice.
func (c *DocumentsController) Download(ctx *gin.Context) {
	msg, doc, err := c.documentsService.Download(middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msg, doc))
}

// DocumentManagementController handles the international office's
// document review screen.
type DocumentManagementController struct {
	service *services.DocumentManagementService
}

// NewDocumentManagementController creates a new DocumentManagementController
func NewDocumentManagementController(service *services.DocumentManagementService) *DocumentManagementController {
	return &DocumentManagementController{service: service}
}

// List returns the filtered review queue
// @Summary List documents under review
// @Tags document-management
// @Produce json
// @Security BearerAuth
// @Param search query string false "Document or student name"
// @Param student query string false "Student ID or all"
// @Param type query string false "Document type or all"
// @Param status query string false "Status or all"
// @Success 200 {object} dto.APIResponse{data=services.DocumentReviewPage}
// @Router /document-management [get]
func (c *DocumentManagementController) List(ctx *gin.Context) {
	var filter dto.DocumentFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}
	page, err := c.service.List(middleware.SessionID(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

func (c *DocumentManagementController) Get(ctx *gin.Context) {
	row, err := c.service.Get(middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(row))
}

func (c *DocumentManagementController) Download(ctx *gin.Context) {
	file, err := c.service.Download(middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendFile(ctx, file)
}

// Approve approves a document
// @Summary Approve document
// @Tags document-management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param confirm query bool false "Must be true to approve"
// @Success 200 {object} dto.APIResponse
// @Router /document-management/{id}/approve [post]
func (c *DocumentManagementController) Approve(ctx *gin.Context) {
	msg, err := c.service.Approve(middleware.SessionID(ctx), ctx.Param("id"), middleware.Confirmed(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msg, nil))
}

// Flag flags a document with a reason
// @Summary Flag document
// @Tags document-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param request body dto.FlagRequest true "Reason"
// @Success 200 {object} dto.APIResponse
// @Router /document-management/{id}/flag [post]
func (c *DocumentManagementController) Flag(ctx *gin.Context) {
	var req dto.FlagRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	msg, err := c.service.Flag(middleware.SessionID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msg, nil))
}

func (c *DocumentManagementController) Export(ctx *gin.Context) {
	var query dto.ExportQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	file, err := c.service.Export(middleware.SessionID(ctx), query.Format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendFile(ctx, file)
}
