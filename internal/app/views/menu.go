package views

import "github.com/yigit/intlportal/internal/app/models"

// MenuItem is a sidebar entry.
type MenuItem struct {
	View  View   `json:"id"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type menuEntry struct {
	view   View
	icon   string
	labels [2]string // en, id
}

var menus = map[models.Role][]menuEntry{
	models.RoleStudent: {
		{ViewDashboard, "layout-dashboard", [2]string{"Dashboard", "Beranda"}},
		{ViewCourses, "book-open", [2]string{"Classes", "Mata Kuliah"}},
		{ViewAcademic, "award", [2]string{"Academic", "Akademik"}},
		{ViewDocuments, "file-text", [2]string{"Documents", "Dokumen"}},
		{ViewVisaImmigration, "globe", [2]string{"Visa & Immigration", "Visa & Imigrasi"}},
		{ViewProfile, "user", [2]string{"Profile", "Profil"}},
		{ViewSupport, "help-circle", [2]string{"Support", "Bantuan"}},
	},
	models.RoleAcademicAdmin: {
		{ViewDashboard, "layout-dashboard", [2]string{"Dashboard", "Beranda"}},
		{ViewStudents, "users", [2]string{"Students", "Mahasiswa"}},
		{ViewCourses, "book-open", [2]string{"Classes", "Mata Kuliah"}},
		{ViewGrades, "bar-chart-3", [2]string{"Grades", "Nilai"}},
	},
	models.RoleInternationalAdmin: {
		{ViewDashboard, "layout-dashboard", [2]string{"Dashboard", "Beranda"}},
		{ViewStudents, "users", [2]string{"International Students", "Mahasiswa Asing"}},
		{ViewDocumentManagement, "file-text", [2]string{"Document Management", "Manajemen Dokumen"}},
	},
}

func pick(lang models.Language, en, id string) string {
	if lang == models.LanguageIndonesian {
		return id
	}
	return en
}

// Menu returns the sidebar entries for role in lang. The schedule view is
// routable for students but has no entry of its own.
func Menu(role models.Role, lang models.Language) []MenuItem {
	entries, ok := menus[role]
	if !ok {
		return []MenuItem{{View: ViewDashboard, Icon: "layout-dashboard", Label: pick(lang, "Dashboard", "Beranda")}}
	}
	items := make([]MenuItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, MenuItem{View: e.view, Icon: e.icon, Label: pick(lang, e.labels[0], e.labels[1])})
	}
	return items
}

// SidebarTitle is the role caption shown under the portal logo.
func SidebarTitle(role models.Role, lang models.Language) string {
	switch role {
	case models.RoleStudent:
		return pick(lang, "International Students", "Mahasiswa Asing")
	case models.RoleAcademicAdmin:
		return pick(lang, "Academic Admin", "Admin Akademik")
	case models.RoleInternationalAdmin:
		return pick(lang, "International Services", "Layanan Internasional")
	default:
		return "Portal"
	}
}

// RoleLabel is the header's role line.
func RoleLabel(role models.Role) string {
	switch role {
	case models.RoleStudent:
		return "Student"
	case models.RoleAcademicAdmin:
		return "Academic Administrator"
	case models.RoleInternationalAdmin:
		return "International Student Advisor"
	default:
		return "User"
	}
}

// LanguageLabel names a UI language in the switcher.
func LanguageLabel(lang models.Language) string {
	if lang == models.LanguageIndonesian {
		return "Bahasa Indonesia"
	}
	return "English"
}

// SearchPlaceholder is the header search hint.
func SearchPlaceholder(role models.Role, lang models.Language) string {
	if role == models.RoleStudent {
		return pick(lang, "Search classes, documents, or resources...", "Cari kelas, dokumen, atau sumber daya...")
	}
	return pick(lang, "Search students, documents, or reports...", "Cari mahasiswa, dokumen, atau laporan...")
}
