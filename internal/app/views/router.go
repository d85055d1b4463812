// Package views holds the closed set of dashboard views and screens and the
// per-role table that maps one onto the other.
package views

import (
	"fmt"

	"github.com/yigit/intlportal/internal/app/models"
)

// View is a navigation target requested by the client.
type View string

const (
	ViewDashboard          View = "dashboard"
	ViewCourses            View = "courses"
	ViewSchedule           View = "schedule"
	ViewAcademic           View = "academic"
	ViewDocuments          View = "documents"
	ViewProfile            View = "profile"
	ViewVisaImmigration    View = "visa-immigration"
	ViewSupport            View = "support"
	ViewStudents           View = "students"
	ViewGrades             View = "grades"
	ViewDocumentManagement View = "document-management"
)

// AllViews lists the closed view set.
var AllViews = []View{
	ViewDashboard, ViewCourses, ViewSchedule, ViewAcademic, ViewDocuments, ViewProfile,
	ViewVisaImmigration, ViewSupport, ViewStudents, ViewGrades, ViewDocumentManagement,
}

// IsValid reports whether v belongs to the closed view set.
func (v View) IsValid() bool {
	for _, known := range AllViews {
		if v == known {
			return true
		}
	}
	return false
}

// Screen identifies a rendered screen component.
type Screen string

const (
	ScreenStudentDashboard      Screen = "StudentDashboard"
	ScreenAdminDashboard        Screen = "AdminDashboard"
	ScreenCourses               Screen = "Courses"
	ScreenClassSchedule         Screen = "ClassSchedule"
	ScreenAcademic              Screen = "Academic"
	ScreenDocuments             Screen = "Documents"
	ScreenProfile               Screen = "Profile"
	ScreenVisaStatus            Screen = "VisaStatus"
	ScreenSupport               Screen = "Support"
	ScreenStudentsManagement    Screen = "StudentsManagement"
	ScreenClassManagement       Screen = "ClassManagement"
	ScreenGradesManagement      Screen = "GradesManagement"
	ScreenInternationalStudents Screen = "InternationalStudents"
	ScreenDocumentManagement    Screen = "DocumentManagement"
)

// AllScreens lists every screen in the closed set.
var AllScreens = []Screen{
	ScreenStudentDashboard, ScreenAdminDashboard, ScreenCourses, ScreenClassSchedule,
	ScreenAcademic, ScreenDocuments, ScreenProfile, ScreenVisaStatus, ScreenSupport,
	ScreenStudentsManagement, ScreenClassManagement, ScreenGradesManagement,
	ScreenInternationalStudents, ScreenDocumentManagement,
}

// Table maps each role's reachable views to screens.
type Table map[models.Role]map[View]Screen

// DefaultTable is the dashboard routing table.
func DefaultTable() Table {
	return Table{
		models.RoleStudent: {
			ViewDashboard:       ScreenStudentDashboard,
			ViewCourses:         ScreenCourses,
			ViewSchedule:        ScreenClassSchedule,
			ViewAcademic:        ScreenAcademic,
			ViewDocuments:       ScreenDocuments,
			ViewProfile:         ScreenProfile,
			ViewVisaImmigration: ScreenVisaStatus,
			ViewSupport:         ScreenSupport,
		},
		models.RoleAcademicAdmin: {
			ViewDashboard: ScreenAdminDashboard,
			ViewStudents:  ScreenStudentsManagement,
			ViewCourses:   ScreenClassManagement,
			ViewGrades:    ScreenGradesManagement,
		},
		models.RoleInternationalAdmin: {
			ViewDashboard:          ScreenAdminDashboard,
			ViewStudents:           ScreenInternationalStudents,
			ViewDocumentManagement: ScreenDocumentManagement,
		},
	}
}

// Resolution is the outcome of routing a requested view.
type Resolution struct {
	Requested string `json:"requested"`
	View      View   `json:"view"`
	Screen    Screen `json:"screen"`
	Fallback  bool   `json:"fallback"`
}

// Router resolves (role, view) pairs to screens.
type Router struct {
	table Table
}

// NewRouter validates table and returns a router over it. Every role must
// have a dashboard entry and every key must be a known view.
func NewRouter(table Table) (*Router, error) {
	for _, role := range models.Roles {
		entries, ok := table[role]
		if !ok {
			return nil, fmt.Errorf("no routes for role %q", role)
		}
		if _, ok := entries[ViewDashboard]; !ok {
			return nil, fmt.Errorf("role %q has no dashboard screen", role)
		}
		for view, screen := range entries {
			if !view.IsValid() {
				return nil, fmt.Errorf("role %q routes unknown view %q", role, view)
			}
			if screen == "" {
				return nil, fmt.Errorf("role %q routes view %q to an empty screen", role, view)
			}
		}
	}
	for role := range table {
		if !role.IsValid() {
			return nil, fmt.Errorf("routes for unknown role %q", role)
		}
	}
	return &Router{table: table}, nil
}

// MustNewRouter is like NewRouter but panics on an invalid table.
func MustNewRouter(table Table) *Router {
	r, err := NewRouter(table)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve maps requested to a screen for role. Anything outside the role's
// table lands on the role's dashboard with Fallback set.
func (r *Router) Resolve(role models.Role, requested string) Resolution {
	entries := r.table[role]
	view := View(requested)
	if screen, ok := entries[view]; ok {
		return Resolution{Requested: requested, View: view, Screen: screen}
	}
	return Resolution{
		Requested: requested,
		View:      ViewDashboard,
		Screen:    entries[ViewDashboard],
		Fallback:  true,
	}
}

// Reachable reports whether role has an explicit route for view.
func (r *Router) Reachable(role models.Role, view View) bool {
	_, ok := r.table[role][view]
	return ok
}
