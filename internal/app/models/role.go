package models

// Role identifies one of the three fixed portal identities.
type Role string

const (
	RoleStudent            Role = "student"
	RoleAcademicAdmin      Role = "academic_admin"
	RoleInternationalAdmin Role = "international_admin"
)

// Roles lists every role in display order.
var Roles = []Role{RoleStudent, RoleAcademicAdmin, RoleInternationalAdmin}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAcademicAdmin, RoleInternationalAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether r is one of the administrator roles.
func (r Role) IsAdmin() bool {
	return r == RoleAcademicAdmin || r == RoleInternationalAdmin
}

// Language is the UI language of a session.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

// IsValid reports whether l is a supported UI language.
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageIndonesian
}
