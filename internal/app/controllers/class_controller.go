package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/middleware"
)

// ClassManagementController handles the academic office's class groups,
// subjects and schedules.
type ClassManagementController struct {
	service services.ClassManagementService
}

// NewClassManagementController creates a new ClassManagementController
func NewClassManagementController(service services.ClassManagementService) *ClassManagementController {
	return &ClassManagementController{service: service}
}

// Overview returns the three tables
// @Summary Class management overview
// @Tags class-management
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.ClassManagementPage}
// @Router /class-management [get]
func (c *ClassManagementController) Overview(ctx *gin.Context) {
	page, err := c.service.Overview(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(page))
}

// GroupStudents lists the shared students enrolled in a class group
// @Summary Students of a class group
// @Tags class-management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Class group ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Router /class-management/groups/{id}/students [get]
func (c *ClassManagementController) GroupStudents(ctx *gin.Context) {
	students, err := c.service.GroupStudents(middleware.SessionID(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

func (c *ClassManagementController) CreateGroup(ctx *gin.Context) {
	var req dto.ClassGroupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	group, err := c.service.CreateGroup(middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(group))
}

func (c *ClassManagementController) UpdateGroup(ctx *gin.Context) {
	var req dto.ClassGroupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	group, err := c.service.UpdateGroup(middleware.SessionID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(group))
}

func (c *ClassManagementController) DeleteGroup(ctx *gin.Context) {
	if err := c.service.DeleteGroup(middleware.SessionID(ctx), ctx.Param("id"), middleware.Confirmed(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Class group deleted", nil))
}

func (c *ClassManagementController) CreateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	subject, err := c.service.CreateSubject(middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(subject))
}

func (c *ClassManagementController) UpdateSubject(ctx *gin.Context) {
	var req dto.SubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	subject, err := c.service.UpdateSubject(middleware.SessionID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject))
}

func (c *ClassManagementController) DeleteSubject(ctx *gin.Context) {
	if err := c.service.DeleteSubject(middleware.SessionID(ctx), ctx.Param("id"), middleware.Confirmed(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject deleted", nil))
}

func (c *ClassManagementController) CreateSchedule(ctx *gin.Context) {
	var req dto.ScheduleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	schedule, err := c.service.CreateSchedule(middleware.SessionID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(schedule))
}

func (c *ClassManagementController) UpdateSchedule(ctx *gin.Context) {
	var req dto.ScheduleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	schedule, err := c.service.UpdateSchedule(middleware.SessionID(ctx), ctx.Param("id"), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

func (c *ClassManagementController) DeleteSchedule(ctx *gin.Context) {
	if err := c.service.DeleteSchedule(middleware.SessionID(ctx), ctx.Param("id"), middleware.Confirmed(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Schedule deleted", nil))
}

// CoursesController handles the student's class lookup and timetable.
type CoursesController struct {
	courses  *services.CoursesService
	schedule *services.ScheduleService
}

// NewCoursesController creates a new CoursesController
func NewCoursesController(courses *services.CoursesService, schedule *services.ScheduleService) *CoursesController {
	return &CoursesController{courses: courses, schedule: schedule}
}

// Lookup finds the schedule of a class code
// @Summary Class lookup
// @Description Upper-cases and trims the code. Unknown codes answer with Found=false and a message. An empty code repeats the last lookup.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param code query string false "Class code such as 4KA21"
// @Success 200 {object} dto.APIResponse{data=services.ClassLookup}
// @Router /courses [get]
func (c *CoursesController) Lookup(ctx *gin.Context) {
	var query dto.ClassLookupQuery
	if !middleware.BindQuery(ctx, &query) {
		return
	}
	res, err := c.courses.Lookup(middleware.SessionID(ctx), query.Code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(res))
}

// Timetable returns the weekly timetable of the student's class group
// @Summary Weekly timetable
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=services.TimetableView}
// @Router /schedule [get]
func (c *CoursesController) Timetable(ctx *gin.Context) {
	view, err := c.schedule.Timetable(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(view))
}
