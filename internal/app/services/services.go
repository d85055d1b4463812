// Package services holds the business logic behind every screen of the
// portal.
//
// Services defined in this package:
//   - AuthService: opens and closes demo sessions
//   - ShellService: header, menu and notifications around every screen
//   - DashboardService: calendars, stats and the shared announcements
//   - StudentsService / InternationalStudentsService: the student registry
//   - DocumentsService / DocumentManagementService: uploads and their review
//   - ClassManagementService, CoursesService, ScheduleService: class groups
//   - AcademicService, GradesService: course selection, grades and exams
//   - ProfileService, SupportService, VisaService: the student's own pages
//
// Screen-local state is created through ScreenMounter when a session
// navigates to a screen and dropped when it leaves.
package services
