package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/middleware"
)

// StudentsController handles the academic office's student management
// screen.
type StudentsController struct {
	studentsService services.StudentsService
	logger          zerolog.Logger
}

// NewStudentsController creates a new StudentsController
func NewStudentsController(studentsService services.StudentsService, logger zerolog.Logger) *StudentsController {
	return &StudentsController{studentsService: studentsService, logger: logger}
}

// List returns the filtered students
// @Summary List students
// @Description Filters the shared students. The stats always count the whole collection.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name, student ID or email"
// @Param status query string false "Status or all"
// @Param program query string false "Program or all"
// @Param country query string false "Country or all"
// @Success 200 {object} dto.APIResponse{data=services.StudentsPage}
// @Router /students [get]
func (c *StudentsController) List(ctx *gin.Context) {
	var filter dto.StudentFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}
	page, err := c.studentsService.List(middleware.SessionID(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

// Get returns one student
// @Summary Get student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentsController) Get(ctx *gin.Context) {
	st, err := c.studentsService.Get(middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(st))
}

// Create adds a student
// @Summary Add student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentRequest true "Student"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /students [post]
func (c *StudentsController) Create(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	created, err := c.studentsService.Create(middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// Update edits a student
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body dto.StudentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [put]
func (c *StudentsController) Update(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	updated, err := c.studentsService.Update(middleware.SessionID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// Delete removes a student
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param confirm query bool false "Must be true to delete"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Confirmation required"
// @Router /students/{id} [delete]
func (c *StudentsController) Delete(ctx *gin.Context) {
	if err := c.studentsService.Delete(middleware.SessionID(ctx), ctx.Param("id"), middleware.Confirmed(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted", nil))
}

// SendEmail mails a notice to a student
// @Summary Email student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{id}/email [post]
func (c *StudentsController) SendEmail(ctx *gin.Context) {
	msg, err := c.studentsService.SendEmail(ctx.Request.Context(), middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		c.logger.Warn().Err(err).Str("id", ctx.Param("id")).Msg("Student email failed")
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(msg, nil))
}

// Export downloads the filtered list
// @Summary Export students
// @Tags students
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "csv or xlsx"
// @Success 200 {file} file
// @Router /students/export [get]
func (c *StudentsController) Export(ctx *gin.Context) {
	var query dto.ExportQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	file, err := c.studentsService.Export(middleware.SessionID(ctx), query.Format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendFile(ctx, file)
}

// InternationalStudentsController handles the international office's
// read-only student list.
type InternationalStudentsController struct {
	service *services.InternationalStudentsService
}

// NewInternationalStudentsController creates a new InternationalStudentsController
func NewInternationalStudentsController(service *services.InternationalStudentsService) *InternationalStudentsController {
	return &InternationalStudentsController{service: service}
}

// List returns the filtered students
// @Summary List international students
// @Tags international-students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.StudentsPage}
// @Router /international-students [get]
func (c *InternationalStudentsController) List(ctx *gin.Context) {
	var filter dto.StudentFilter
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

func (c *InternationalStudentsController) Get(ctx *gin.Context) {
	st, err := c.service.Get(middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(st))
}

func (c *InternationalStudentsController) Export(ctx *gin.Context) {
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
