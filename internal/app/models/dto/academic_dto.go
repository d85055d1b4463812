package dto

// SemesterQuery selects a course selection sheet. Zero keeps the
// semester already shown.
type SemesterQuery struct {
	Semester int `form:"semester" binding:"omitempty,min=1,max=8" example:"7"`
}

// SheetQuery selects the format of a printable sheet.
type SheetQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=txt pdf" example:"pdf"`
}

// GradeSearchQuery filters the grade book's student list by name or
// student number.
type GradeSearchQuery struct {
	Search string `form:"search" example:"chen"`
}

// GradeEditRequest is the edit grade form.
type GradeEditRequest struct {
	Grade string `json:"grade" binding:"required,oneof=A A- B+ B B- C+ C C- D+ D F" example:"B+"`
}
