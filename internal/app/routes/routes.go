package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/intlportal/internal/app/controllers"
	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/middleware"
	"github.com/yigit/intlportal/internal/pkg/websocket"
)

// Controllers groups every handler the router wires.
type Controllers struct {
	Auth                  *controllers.AuthController
	Session               *controllers.SessionController
	Dashboard             *controllers.DashboardController
	Students              *controllers.StudentsController
	InternationalStudents *controllers.InternationalStudentsController
	Documents             *controllers.DocumentsController
	DocumentManagement    *controllers.DocumentManagementController
	ClassManagement       *controllers.ClassManagementController
	Courses               *controllers.CoursesController
	Academic              *controllers.AcademicController
	Grades                *controllers.GradesController
	Profile               *controllers.ProfileController
	Support               *controllers.SupportController
	Pages                 *controllers.PageController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware, wsHandler *websocket.Handler) {
	// --- HTML pages ---
	router.GET("/login", c.Pages.LoginPage)
	router.POST("/login", c.Pages.LoginSubmit)
	router.POST("/login/demo/:role", c.Pages.DemoSubmit)

	pages := router.Group("")
	pages.Use(authMiddleware.PageAuth("/login"))
	{
		pages.GET("/", func(ctx *gin.Context) { ctx.Redirect(http.StatusFound, "/app/dashboard") })
		pages.GET("/app/:view", c.Pages.App)
		pages.POST("/logout", c.Pages.Logout)
	}

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/demo/:role", c.Auth.DemoLogin)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.POST("/auth/logout", c.Auth.Logout)
	authenticated.GET("/ws", wsHandler.HandleConnection)

	sessionRoutes := authenticated.Group("/session")
	{
		sessionRoutes.GET("", c.Session.Shell)
		sessionRoutes.PUT("/view", c.Session.Navigate)
		sessionRoutes.PUT("/language", c.Session.SetLanguage)
	}

	// Student screens
	student := authenticated.Group("")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/dashboard/student", c.Dashboard.StudentDashboard)
		student.GET("/courses", c.Courses.Lookup)
		student.GET("/schedule", c.Courses.Timetable)

		academic := student.Group("/academic")
		{
			academic.GET("/course-selection", c.Academic.CourseSelection)
			academic.GET("/course-selection/download", c.Academic.DownloadCourseSelection)
			academic.GET("/grades", c.Academic.Grades)
			academic.GET("/exams", c.Academic.Exams)
			academic.GET("/exams/:type", c.Academic.ExamSchedule)
			academic.GET("/exams/:type/card", c.Academic.DownloadExamCard)
			academic.GET("/payments", c.Academic.Payments)
		}

		documents := student.Group("/documents")
		{
			documents.GET("", c.Documents.List)
			documents.POST("", c.Documents.Create)
			documents.POST("/upload", c.Documents.Upload)
			documents.GET("/:id", c.Documents.Get)
			documents.GET("/:id/download", c.Documents.Download)
			documents.DELETE("/:id", c.Documents.Delete)
		}

		profile := student.Group("/profile")
		{
			profile.GET("", c.Profile.View)
			profile.PUT("/personal", c.Profile.Edit)
			profile.POST("/personal/save", c.Profile.Save)
			profile.POST("/personal/reset", c.Profile.Reset)
			profile.POST("/picture", c.Profile.UploadPicture)
		}

		student.GET("/visa", c.Support.Visa)
		student.GET("/support", c.Support.Support)
	}

	// Administrator dashboard, shared by both offices
	admin := authenticated.Group("")
	admin.Use(authMiddleware.RoleRequired(models.RoleAcademicAdmin, models.RoleInternationalAdmin))
	{
		admin.GET("/dashboard/admin", c.Dashboard.AdminDashboard)
	}

	// Academic office screens
	academicOffice := authenticated.Group("")
	academicOffice.Use(authMiddleware.RoleRequired(models.RoleAcademicAdmin))
	{
		announcements := academicOffice.Group("/announcements")
		{
			announcements.POST("", c.Dashboard.CreateAnnouncement)
			announcements.PUT("/:id", c.Dashboard.UpdateAnnouncement)
			announcements.DELETE("/:id", c.Dashboard.DeleteAnnouncement)
		}

		students := academicOffice.Group("/students")
		{
			students.GET("", c.Students.List)
			students.POST("", c.Students.Create)
			students.GET("/export", c.Students.Export)
			students.GET("/:id", c.Students.Get)
			students.PUT("/:id", c.Students.Update)
			students.DELETE("/:id", c.Students.Delete)
			students.POST("/:id/email", c.Students.SendEmail)
		}

		classes := academicOffice.Group("/class-management")
		{
			classes.GET("", c.ClassManagement.Overview)
			classes.POST("/groups", c.ClassManagement.CreateGroup)
			classes.PUT("/groups/:id", c.ClassManagement.UpdateGroup)
			classes.DELETE("/groups/:id", c.ClassManagement.DeleteGroup)
			classes.GET("/groups/:id/students", c.ClassManagement.GroupStudents)
			classes.POST("/subjects", c.ClassManagement.CreateSubject)
			classes.PUT("/subjects/:id", c.ClassManagement.UpdateSubject)
			classes.DELETE("/subjects/:id", c.ClassManagement.DeleteSubject)
			classes.POST("/schedules", c.ClassManagement.CreateSchedule)
			classes.PUT("/schedules/:id", c.ClassManagement.UpdateSchedule)
			classes.DELETE("/schedules/:id", c.ClassManagement.DeleteSchedule)
		}

		grades := academicOffice.Group("/grades")
		{
			grades.GET("", c.Grades.List)
			grades.GET("/export", c.Grades.Export)
			grades.GET("/students/:studentId", c.Grades.StudentGrades)
			grades.PUT("/:id", c.Grades.EditGrade)
		}
	}

	// International office screens
	internationalOffice := authenticated.Group("")
	internationalOffice.Use(authMiddleware.RoleRequired(models.RoleInternationalAdmin))
	{
		intl := internationalOffice.Group("/international-students")
		{
			intl.GET("", c.InternationalStudents.List)
			intl.GET("/export", c.InternationalStudents.Export)
			intl.GET("/:id", c.InternationalStudents.Get)
		}

		review := internationalOffice.Group("/document-management")
		{
			review.GET("", c.DocumentManagement.List)
			review.GET("/export", c.DocumentManagement.Export)
			review.GET("/:id", c.DocumentManagement.Get)
			review.GET("/:id/download", c.DocumentManagement.Download)
			review.POST("/:id/approve", c.DocumentManagement.Approve)
			review.POST("/:id/flag", c.DocumentManagement.Flag)
		}
	}
}
