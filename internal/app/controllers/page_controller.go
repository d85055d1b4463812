package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/models/dto"
	"github.com/yigit/intlportal/internal/app/services"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/middleware"
	"github.com/yigit/intlportal/internal/pkg/apperrors"
	"github.com/yigit/intlportal/internal/seed"
)

// ScreenRenderer loads the data a screen shows on first render.
type ScreenRenderer func(sessionID string) (any, error)

type demoAccount struct {
	Role  models.Role
	Label string
	Email string
}

type loginPage struct {
	Title string
	Error string
	Email string
	Demos []demoAccount
}

type appPage struct {
	Shell *services.ShellView
	Data  any
	Error string
}

// PageController serves the HTML login page and the app shell.
type PageController struct {
	authService services.AuthService
	sessions    *session.Manager
	renderers   map[views.Screen]ScreenRenderer
	cookie      SessionCookie
	logger      zerolog.Logger
}

// NewPageController creates a new PageController
func NewPageController(authService services.AuthService, sessions *session.Manager, renderers map[views.Screen]ScreenRenderer, cookie SessionCookie, logger zerolog.Logger) *PageController {
	return &PageController{
		authService: authService,
		sessions:    sessions,
		renderers:   renderers,
		cookie:      cookie,
		logger:      logger,
	}
}

func (c *PageController) renderLogin(ctx *gin.Context, status int, email, errMsg string) {
	page := loginPage{Title: "International Student Portal", Error: errMsg, Email: email}
	for _, role := range models.Roles {
		if user, ok := seed.DemoUser(role); ok {
			page.Demos = append(page.Demos, demoAccount{Role: role, Label: views.RoleLabel(role), Email: user.Email})
		}
	}
	ctx.HTML(status, "login.gohtml", page)
}

// LoginPage shows the login form.
func (c *PageController) LoginPage(ctx *gin.Context) {
	c.renderLogin(ctx, http.StatusOK, "", "")
}

// LoginSubmit handles the HTML login form.
func (c *PageController) LoginSubmit(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.renderLogin(ctx, http.StatusBadRequest, req.Email, "Please enter your email and password.")
		return
	}
	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Page login failed")
		c.renderLogin(ctx, http.StatusInternalServerError, req.Email, "Login failed, please try again.")
		return
	}
	c.cookie.set(ctx, resp.AccessToken)
	ctx.Redirect(http.StatusSeeOther, "/app/"+string(views.ViewDashboard))
}

// DemoSubmit handles the demo account buttons.
func (c *PageController) DemoSubmit(ctx *gin.Context) {
	resp, err := c.authService.DemoLogin(ctx.Request.Context(), models.Role(ctx.Param("role")))
	if err != nil {
		status := http.StatusInternalServerError
		if apperrors.Is(err, apperrors.ErrUnknownDemoRole) {
			status = http.StatusBadRequest
		}
		c.renderLogin(ctx, status, "", "Unknown demo account.")
		return
	}
	c.cookie.set(ctx, resp.AccessToken)
	ctx.Redirect(http.StatusSeeOther, "/app/"+string(views.ViewDashboard))
}

// Logout closes the session and returns to the login page.
func (c *PageController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(middleware.SessionID(ctx)); err != nil {
		c.logger.Debug().Err(err).Msg("Logout of a closed session")
	}
	c.cookie.clear(ctx)
	ctx.Redirect(http.StatusSeeOther, "/login")
}

// App navigates to the requested view and renders the shell around its
// screen. A lang query parameter switches the language first.
func (c *PageController) App(ctx *gin.Context) {
	sessionID := middleware.SessionID(ctx)
	if lang := ctx.Query("lang"); lang != "" {
		if _, err := c.sessions.SetLanguage(sessionID, models.Language(lang)); err != nil {
			c.logger.Debug().Err(err).Str("lang", lang).Msg("Language not switched")
		}
	}

	info, err := c.sessions.Navigate(ctx.Request.Context(), sessionID, ctx.Param("view"))
	if err != nil {
		c.cookie.clear(ctx)
		ctx.Redirect(http.StatusFound, "/login")
		return
	}

	page := appPage{Shell: services.BuildShell(info)}
	if render, ok := c.renderers[info.Resolution.Screen]; ok {
		data, err := render(sessionID)
		if err != nil {
			c.logger.Error().Err(err).Str("screen", string(info.Resolution.Screen)).Msg("Failed to render screen")
			page.Error = "This screen could not be loaded."
		}
		page.Data = data
	}
	ctx.HTML(http.StatusOK, "app.gohtml", page)
}
