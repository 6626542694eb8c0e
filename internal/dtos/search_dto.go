package dtos

// StudentSearchQuery mirrors the /student/search query string. All filter
// dimensions are optional; pagination is mandatory and arrives as strings,
// matching the client contract.
type StudentSearchQuery struct {
	FirstName      string   `form:"firstName"`
	LastName       string   `form:"lastName"`
	Email          string   `form:"email"`
	SID            string   `form:"sid"`
	DepartmentIDs  []string `form:"departmentIds"`
	ClassStandings []string `form:"classStandings"`
	CourseIDs      []string `form:"courseIds"`
	MinimumGPA     string   `form:"minimumGpa"`
	Page           string   `form:"page" binding:"required"`
	NumOfItems     string   `form:"numOfItems" binding:"required"`
}

// ApplicantSearchQuery is the student filter plus the job whose applicants
// are requested.
type ApplicantSearchQuery struct {
	JobID          string   `form:"jobId" binding:"required"`
	DepartmentIDs  []string `form:"departmentIds"`
	ClassStandings []string `form:"classStandings"`
	MinimumGPA     string   `form:"minimumGpa"`
	CourseIDs      []string `form:"courseIds"`
	Page           string   `form:"page" binding:"required"`
	NumOfItems     string   `form:"numOfItems" binding:"required"`
}

// JobSearchQuery mirrors the /job/read query string.
type JobSearchQuery struct {
	Title        string   `form:"title"`
	Types        []string `form:"types"`
	StartDate    string   `form:"startDate"`
	MinSalary    string   `form:"minSalary"`
	HoursPerWeek string   `form:"hoursPerWeek"`
	Page         string   `form:"page" binding:"required"`
	NumOfItems   string   `form:"numOfItems" binding:"required"`
}

// PageQuery is the bare pagination pair used by list endpoints.
type PageQuery struct {
	Page       string `form:"page" binding:"required"`
	NumOfItems string `form:"numOfItems" binding:"required"`
}
