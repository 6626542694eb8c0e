package dtos

// UpdateStudentProfileRequest carries the editable slice of a student
// profile. ID must match the caller's own student row.
type UpdateStudentProfileRequest struct {
	ID            uint     `json:"id" binding:"required"`
	FirstName     string   `json:"firstName" binding:"required"`
	MiddleName    string   `json:"middleName"`
	LastName      string   `json:"lastName" binding:"required"`
	Biography     string   `json:"biography"`
	DepartmentID  *uint    `json:"departmentId"`
	SID           string   `json:"sid"`
	GPA           *float64 `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	ClassStanding *string  `json:"classStanding" binding:"omitempty,oneof=Freshman Sophomore Junior Senior"`
	CourseIDs     []uint   `json:"courseIds"`
}

// StudentPreview is the public-safe projection returned by search.
type StudentPreview struct {
	ID            uint     `json:"id"`
	FirstName     string   `json:"firstName"`
	MiddleName    string   `json:"middleName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	SID           string   `json:"sid"`
	GPA           *float64 `json:"gpa"`
	ClassStanding *string  `json:"classStanding"`
	Department    string   `json:"department"`
	College       string   `json:"college"`
}
