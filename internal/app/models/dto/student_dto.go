package dto

import "github.com/yigit/intlportal/internal/app/models"

// StudentFilter narrows a student list. "all" or an empty value disables
// a filter.
type StudentFilter struct {
	Search  string `form:"search" example:"maria"`
	Status  string `form:"status" example:"active"`
	Program string `form:"program" example:"Computer Science"`
	Country string `form:"country" example:"Mexico"`
}

// ExportQuery selects the format of a table export.
type ExportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx" example:"csv"`
}

// StudentRequest is the add/edit student form. Fields left empty on edit
// keep their current value.
type StudentRequest struct {
	Name           string               `json:"name" example:"Yuki Tanaka"`
	Email          string               `json:"email" binding:"omitempty,email" example:"yuki.tanaka@university.edu"`
	StudentID      string               `json:"studentId" example:"STU2024006"`
	Country        string               `json:"country" example:"Japan"`
	Program        string               `json:"program" example:"Computer Science"`
	Year           string               `json:"year" example:"Freshman"`
	GPA            *float64             `json:"gpa" binding:"omitempty,min=0,max=4" example:"3.2"`
	Avatar         string               `json:"avatar"`
	Status         models.StudentStatus `json:"status" binding:"omitempty,oneof=active inactive graduated" example:"active"`
	VisaStatus     models.VisaStatus    `json:"visaStatus" binding:"omitempty,oneof=valid expiring expired" example:"valid"`
	EnrollmentDate string               `json:"enrollmentDate" example:"2024-08-15"`
	ClassGroup     string               `json:"classGroup" example:"4KA21"`
}
