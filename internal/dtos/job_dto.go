package dtos

// JobCreationRequest is the body of POST /job/create. Dates arrive as
// YYYY-MM-DD strings and are parsed in the service.
type JobCreationRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	HoursPerWeek float64  `json:"hoursPerWeek" binding:"required,gt=0"`
	MinSalary    float64  `json:"minSalary" binding:"gte=0"`
	MaxSalary    *float64 `json:"maxSalary" binding:"omitempty,gte=0"`
	TargetYears  []string `json:"targetYears" binding:"required,dive,oneof=Freshman Sophomore Junior Senior"`
	Type         []string `json:"type" binding:"required,dive,oneof=grader assistant researcher volunteer tutor other"`

	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate"`
	ExpirationDate string `json:"expirationDate"`

	DepartmentID uint `json:"departmentId" binding:"required"`
}

// JobUpdateRequest is a creation request plus the id of the posting to edit.
type JobUpdateRequest struct {
	ID uint `json:"id" binding:"required"`
	JobCreationRequest
}
