package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/intlportal/internal/app/controllers"
	"github.com/yigit/intlportal/internal/app/models/dto"
	appRoutes "github.com/yigit/intlportal/internal/app/routes"
	appServices "github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/state"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/config"
	appMiddleware "github.com/yigit/intlportal/internal/middleware"
	pkgAuth "github.com/yigit/intlportal/internal/pkg/auth"
	"github.com/yigit/intlportal/internal/pkg/durable"
	"github.com/yigit/intlportal/internal/pkg/email"
	"github.com/yigit/intlportal/internal/pkg/filestorage"
	"github.com/yigit/intlportal/internal/pkg/helpers"
	"github.com/yigit/intlportal/internal/pkg/logger"
	"github.com/yigit/intlportal/internal/pkg/websocket"
	"github.com/yigit/intlportal/internal/seed"
	"github.com/yigit/intlportal/internal/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store          *state.Store
	Sessions       *session.Manager
	Mounter        *appServices.ScreenMounter
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	FileStorage    *filestorage.LocalStorage
	Hub            *websocket.Hub
	Relay          *websocket.AnnouncementRelay
	WSHandler      *websocket.Handler

	AuthService            appServices.AuthService
	DashboardService       appServices.DashboardService
	StudentsService        appServices.StudentsService
	DocumentsService       appServices.DocumentsService
	ClassManagementService appServices.ClassManagementService
	GradesService          appServices.GradesService
	InternationalStudents  *appServices.InternationalStudentsService
	DocumentManagement     *appServices.DocumentManagementService
	CoursesService         *appServices.CoursesService
	ScheduleService        *appServices.ScheduleService
	AcademicService        *appServices.AcademicService
	ProfileService         *appServices.ProfileService
	SupportService         *appServices.SupportService
	VisaService            *appServices.VisaService

	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// ConfigPath returns the configuration file, overridable with CONFIG_PATH.
func ConfigPath() string {
	return config.GetEnv("CONFIG_PATH", "configs/config.yaml")
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the shared state, services and controllers.
// Background workers are bound to ctx.
func BuildDependencies(ctx context.Context, cfg *config.Config, backend durable.Backend, lgr zerolog.Logger) (*Dependencies, error) {
	if err := seed.Check(); err != nil {
		return nil, fmt.Errorf("seed data is inconsistent: %w", err)
	}

	deps := &Dependencies{Logger: lgr}
	clock := helpers.SystemClock{}

	announcements := durable.NewSlice(backend, cfg.Storage.AnnouncementsKey, seed.Announcements, lgr.With().Str("component", "durable").Logger())
	deps.Store = state.NewStore(ctx, seed.Students(), announcements, lgr.With().Str("component", "state").Logger())

	router, err := views.NewRouter(views.DefaultTable())
	if err != nil {
		return nil, fmt.Errorf("invalid view table: %w", err)
	}
	deps.Mounter = appServices.NewScreenMounter()
	deps.Sessions = session.NewManager(router, deps.Mounter, clock, lgr.With().Str("component", "session").Logger())

	expiration := helpers.ParseDuration(cfg.Session.Expiration, 12*time.Hour)
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		Expiration:  expiration,
		TokenIssuer: cfg.Session.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Sessions, cfg.Session.CookieName)

	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir, cfg.PublicBaseURL()+"/uploads", lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	mailer := email.NewEmailService(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, lgr)

	quoteCSV := cfg.Export.QuoteCSV

	// Services register their screens with the mounter as they are built.
	deps.AuthService = appServices.NewAuthService(deps.Sessions, deps.JWTService, appServices.AuthDelays{
		Form: helpers.ParseDuration(cfg.Session.LoginDelay, time.Second),
		Demo: helpers.ParseDuration(cfg.Session.DemoLoginDelay, 100*time.Millisecond),
	}, lgr)
	deps.DashboardService = appServices.NewDashboardService(deps.Store, deps.Sessions, deps.Mounter, clock, lgr)
	deps.StudentsService = appServices.NewStudentsService(deps.Store, deps.Sessions, deps.Mounter, mailer, clock, quoteCSV, lgr)
	deps.DocumentsService = appServices.NewDocumentsService(deps.Store, deps.Sessions, deps.Mounter, deps.FileStorage,
		filestorage.DocumentPolicy(cfg.Storage.MaxDocumentSizeMB), clock, lgr)
	deps.ClassManagementService = appServices.NewClassManagementService(deps.Store, deps.Sessions, deps.Mounter, clock, lgr)
	deps.GradesService = appServices.NewGradesService(deps.Store, deps.Sessions, deps.Mounter, clock, quoteCSV, lgr)
	deps.InternationalStudents = appServices.NewInternationalStudentsService(deps.Store, deps.Sessions, deps.Mounter, clock, quoteCSV)
	deps.DocumentManagement = appServices.NewDocumentManagementService(deps.Store, deps.Sessions, deps.Mounter, clock, quoteCSV, lgr)
	deps.CoursesService = appServices.NewCoursesService(deps.Sessions, deps.Mounter)
	deps.ScheduleService = appServices.NewScheduleService(deps.Sessions)
	deps.AcademicService = appServices.NewAcademicService(deps.Sessions, deps.Mounter, clock)
	deps.ProfileService = appServices.NewProfileService(deps.Sessions, deps.Mounter, deps.FileStorage,
		filestorage.PicturePolicy(cfg.Storage.MaxPictureSizeMB), lgr)
	deps.SupportService = appServices.NewSupportService(deps.Sessions, deps.Mounter)
	deps.VisaService = appServices.NewVisaService(deps.Sessions, deps.Mounter)

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "ws").Logger())
	deps.Relay = websocket.NewAnnouncementRelay(deps.Store, deps.Hub, lgr)
	deps.WSHandler = websocket.NewHandler(deps.Hub, lgr)

	cookie := appControllers.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: int(expiration / time.Second),
		Secure: strings.ToLower(cfg.Server.Mode) == "production",
	}

	deps.Controllers = appRoutes.Controllers{
		Auth:                  appControllers.NewAuthController(deps.AuthService, cookie, lgr),
		Session:               appControllers.NewSessionController(deps.Sessions, appServices.NewShellService(deps.Sessions)),
		Dashboard:             appControllers.NewDashboardController(deps.DashboardService, lgr),
		Students:              appControllers.NewStudentsController(deps.StudentsService, lgr),
		InternationalStudents: appControllers.NewInternationalStudentsController(deps.InternationalStudents),
		Documents:             appControllers.NewDocumentsController(deps.DocumentsService, lgr),
		DocumentManagement:    appControllers.NewDocumentManagementController(deps.DocumentManagement),
		ClassManagement:       appControllers.NewClassManagementController(deps.ClassManagementService),
		Courses:               appControllers.NewCoursesController(deps.CoursesService, deps.ScheduleService),
		Academic:              appControllers.NewAcademicController(deps.AcademicService),
		Grades:                appControllers.NewGradesController(deps.GradesService),
		Profile:               appControllers.NewProfileController(deps.ProfileService, lgr),
		Support:               appControllers.NewSupportController(deps.SupportService, deps.VisaService),
		Pages:                 appControllers.NewPageController(deps.AuthService, deps.Sessions, screenRenderers(deps), cookie, lgr),
	}

	return deps, nil
}

// screenRenderers maps each screen to the call that loads its first view
// for the HTML shell.
func screenRenderers(deps *Dependencies) map[views.Screen]appControllers.ScreenRenderer {
	return map[views.Screen]appControllers.ScreenRenderer{
		views.ScreenStudentDashboard: func(sid string) (any, error) {
			return deps.DashboardService.StudentDashboard(sid, "")
		},
		views.ScreenAdminDashboard: func(sid string) (any, error) {
			return deps.DashboardService.AdminDashboard(sid, "")
		},
		views.ScreenCourses: func(sid string) (any, error) {
			return deps.CoursesService.Lookup(sid, "")
		},
		views.ScreenClassSchedule: func(sid string) (any, error) {
			return deps.ScheduleService.Timetable(sid)
		},
		views.ScreenAcademic: func(sid string) (any, error) {
			return deps.AcademicService.CourseSelection(sid, 0)
		},
		views.ScreenDocuments: func(sid string) (any, error) {
			return deps.DocumentsService.List(sid, "")
		},
		views.ScreenProfile: func(sid string) (any, error) {
			return deps.ProfileService.View(sid)
		},
		views.ScreenVisaStatus: func(sid string) (any, error) {
			return deps.VisaService.Page(sid, "")
		},
		views.ScreenSupport: func(sid string) (any, error) {
			return deps.SupportService.Page(sid, "")
		},
		views.ScreenStudentsManagement: func(sid string) (any, error) {
			return deps.StudentsService.List(sid, dto.StudentFilter{})
		},
		views.ScreenClassManagement: func(sid string) (any, error) {
			return deps.ClassManagementService.Overview(sid)
		},
		views.ScreenGradesManagement: func(sid string) (any, error) {
			return deps.GradesService.List(sid, "")
		},
		views.ScreenInternationalStudents: func(sid string) (any, error) {
			return deps.InternationalStudents.List(sid, dto.StudentFilter{})
		},
		views.ScreenDocumentManagement: func(sid string) (any, error) {
			return deps.DocumentManagement.List(sid, dto.DocumentFilter{})
		},
	}
}

// StartWorkers runs the websocket hub and the announcement relay until ctx
// is done.
func StartWorkers(ctx context.Context, deps *Dependencies) {
	go deps.Hub.Run(ctx)
	deps.Relay.Start(ctx)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	setupStaticFileServing(router, cfg.Storage.UploadDir, lgr)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.WSHandler)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.NoRoute(func(c *gin.Context) {
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
	})

	return router, nil
}

// setupStaticFileServing serves uploaded files under /uploads.
func setupStaticFileServing(router *gin.Engine, uploadPath string, lgr zerolog.Logger) {
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		lgr.Error().Err(err).Str("path", uploadPath).Msg("Failed to create uploads directory")
		return
	}
	router.Static("/uploads", uploadPath)
	lgr.Info().Str("path", uploadPath).Msg("Static file serving configured for uploads directory")
}
