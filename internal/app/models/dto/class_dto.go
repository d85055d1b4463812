package dto

// ClassLookupQuery is the class code typed into the lookup box.
type ClassLookupQuery struct {
	Code string `form:"code" example:"4ka21"`
}

// ClassGroupRequest is the add/edit class group form. Fields left empty on
// edit keep their current value.
type ClassGroupRequest struct {
	Code          string `json:"code" example:"4KA22"`
	Year          *int   `json:"year" binding:"omitempty,min=1,max=9" example:"4"`
	Program       string `json:"program" example:"KA"`
	Section       string `json:"section" example:"22"`
	TotalStudents *int   `json:"totalStudents" binding:"omitempty,min=0" example:"30"`
	AcademicYear  string `json:"academicYear" example:"2023/2024"`
	Advisor       string `json:"advisor" example:"Dr. Lisa Park"`
}

// SubjectRequest is the add/edit subject form.
type SubjectRequest struct {
	Code        string `json:"code" example:"CS404"`
	Name        string `json:"name" example:"Computer Networks"`
	Credits     *int   `json:"credits" binding:"omitempty,min=0,max=24" example:"3"`
	Semester    *int   `json:"semester" binding:"omitempty,min=1,max=8" example:"7"`
	Lecturer    string `json:"lecturer" example:"Dr. Lisa Park"`
	Description string `json:"description"`
}

// ScheduleRequest is the add/edit schedule form.
type ScheduleRequest struct {
	ClassGroupID string `json:"classGroupId" example:"1"`
	SubjectID    string `json:"subjectId" example:"3"`
	Day          string `json:"day" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday" example:"Monday"`
	StartTime    string `json:"startTime" example:"08:00"`
	EndTime      string `json:"endTime" example:"10:00"`
	Room         string `json:"room" example:"B231"`
	Lecturer     string `json:"lecturer" example:"Dr. Sarah Johnson"`
	Semester     string `json:"semester" example:"Semester 7"`
}
