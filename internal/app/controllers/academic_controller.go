package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/middleware"
)

// AcademicController handles the student's academic screen: course
// selection, grades, exams and payments.
type AcademicController struct {
	service *services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(service *services.AcademicService) *AcademicController {
	return &AcademicController{service: service}
}

// CourseSelection returns the KRS of a semester
// @Summary Course selection
// @Tags academic
// @Produce json
// @Security BearerAuth
// @Param semester query int false "1-8, defaults to the semester last shown"
// @Success 200 {object} dto.APIResponse{data=services.CourseSelectionView}
// @Router /academic/course-selection [get]
func (c *AcademicController) CourseSelection(ctx *gin.Context) {
	var query dto.SemesterQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	view, err := c.service.CourseSelection(middleware.SessionID(ctx), query.Semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// DownloadCourseSelection prints the course selection sheet
// @Summary Download course selection sheet
// @Tags academic
// @Produce plain
// @Security BearerAuth
// @Param format query string false "txt or pdf"
// @Success 200 {file} file
// @Router /academic/course-selection/download [get]
func (c *AcademicController) DownloadCourseSelection(ctx *gin.Context) {
	var query dto.SheetQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	file, err := c.service.DownloadCourseSelection(middleware.SessionID(ctx), query.Format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendFile(ctx, file)
}

// Grades returns the grades summary with the credit-weighted GPA.
func (c *AcademicController) Grades(ctx *gin.Context) {
	summary, err := c.service.Grades(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

func (c *AcademicController) Exams(ctx *gin.Context) {
	overview, err := c.service.Exams(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(overview))
}

// ExamSchedule lists the exams of one exam type
// @Summary Exam schedule
// @Tags academic
// @Produce json
// @Security BearerAuth
// @Param type path string true "UTS, UAS or Ujian Utama"
// @Success 200 {object} dto.APIResponse{data=services.ExamScheduleView}
// @Failure 404 {object} dto.ErrorResponse "Exam type not found"
// @Router /academic/exams/{type} [get]
func (c *AcademicController) ExamSchedule(ctx *gin.Context) {
	view, err := c.service.ExamSchedule(middleware.SessionID(ctx), models.ExamType(ctx.Param("type")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// DownloadExamCard prints the exam card of one exam type
// @Summary Download exam card
// @Tags academic
// @Produce plain
// @Security BearerAuth
// @Param type path string true "UTS, UAS or Ujian Utama"
// @Param format query string false "txt or pdf"
// @Success 200 {file} file
// @Router /academic/exams/{type}/card [get]
func (c *AcademicController) DownloadExamCard(ctx *gin.Context) {
	var query dto.SheetQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	file, err := c.service.DownloadExamCard(middleware.SessionID(ctx), models.ExamType(ctx.Param("type")), query.Format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendFile(ctx, file)
}

func (c *AcademicController) Payments(ctx *gin.Context) {
	lines, err := c.service.Payments(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lines))
}

// GradesController handles the academic office's grade book.
type GradesController struct {
	gradesService services.GradesService
}

// NewGradesController creates a new GradesController
func NewGradesController(gradesService services.GradesService) *GradesController {
	return &GradesController{gradesService: gradesService}
}

// List returns the students with their grades
// @Summary Grade book
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or student ID"
// @Success 200 {object} dto.APIResponse{data=services.GradesPage}
// @Router /grades [get]
func (c *GradesController) List(ctx *gin.Context) {
	var query dto.GradeSearchQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	page, err := c.gradesService.List(middleware.SessionID(ctx), query.Search)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

func (c *GradesController) StudentGrades(ctx *gin.Context) {
	view, err := c.gradesService.StudentGrades(middleware.SessionID(ctx), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}

// EditGrade accepts a grade change without saving it
// @Summary Edit grade
// @Description The edit is validated and echoed back but the grade book is left unchanged.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grade ID"
// @Param request body dto.GradeEditRequest true "New grade"
// @Success 200 {object} dto.APIResponse{data=services.GradeEdit}
// @Router /grades/{id} [put]
func (c *GradesController) EditGrade(ctx *gin.Context) {
	var req dto.GradeEditRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	edit, err := c.gradesService.EditGrade(middleware.SessionID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(edit))
}

func (c *GradesController) Export(ctx *gin.Context) {
	var query dto.ExportQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	file, err := c.gradesService.Export(middleware.SessionID(ctx), query.Format)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendFile(ctx, file)
}
