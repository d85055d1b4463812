package services

import (
	"github.com/yigit/intlportal/internal/app/models"
	"github.com/yigit/intlportal/internal/app/session"
	"github.com/yigit/intlportal/internal/app/views"
	"github.com/yigit/intlportal/internal/seed"
)

// LanguageOption is an entry of the header language switcher.
type LanguageOption struct {
	Code     models.Language `json:"code"`
	Label    string          `json:"label"`
	Selected bool            `json:"selected"`
}

// ShellView is the sidebar and header around every screen.
type ShellView struct {
	User              models.User           `json:"user"`
	Language          models.Language       `json:"language"`
	ActiveView        views.View            `json:"activeView"`
	Screen            views.Screen          `json:"screen"`
	SidebarTitle      string                `json:"sidebarTitle"`
	Menu              []views.MenuItem      `json:"menu"`
	RoleLabel         string                `json:"roleLabel"`
	DisplayID         string                `json:"displayId"`
	Notifications     []models.Notification `json:"notifications"`
	UnreadCount       int                   `json:"unreadCount"`
	SearchPlaceholder string                `json:"searchPlaceholder"`
	Languages         []LanguageOption      `json:"languages"`
}

// ShellService builds the page chrome for a session.
type ShellService struct {
	sessions *session.Manager
}

// NewShellService creates a new ShellService
func NewShellService(sessions *session.Manager) *ShellService {
	return &ShellService{sessions: sessions}
}

// Shell returns the chrome for sessionID's current state.
func (s *ShellService) Shell(sessionID string) (*ShellView, error) {
	info, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return BuildShell(info), nil
}

// BuildShell derives the chrome from a session snapshot.
func BuildShell(info session.Info) *ShellView {
	user, lang := info.User, info.Language
	notifications := seed.Notifications()
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	languages := make([]LanguageOption, 0, 2)
	for _, l := range []models.Language{models.LanguageEnglish, models.LanguageIndonesian} {
		languages = append(languages, LanguageOption{Code: l, Label: views.LanguageLabel(l), Selected: l == lang})
	}

	return &ShellView{
		User:              user,
		Language:          lang,
		ActiveView:        info.Resolution.View,
		Screen:            info.Resolution.Screen,
		SidebarTitle:      views.SidebarTitle(user.Role, lang),
		Menu:              views.Menu(user.Role, lang),
		RoleLabel:         views.RoleLabel(user.Role),
		DisplayID:         DisplayID(user),
		Notifications:     notifications,
		UnreadCount:       unread,
		SearchPlaceholder: views.SearchPlaceholder(user.Role, lang),
		Languages:         languages,
	}
}

// DisplayID is the identifier under the user's name: the student number
// for students and the department otherwise.
func DisplayID(user models.User) string {
	if user.Role == models.RoleStudent {
		return user.StudentID
	}
	return user.Department
}
