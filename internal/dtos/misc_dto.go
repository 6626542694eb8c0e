package dtos

// UpdateFacultyProfileRequest carries the editable slice of a faculty
// member profile.
type UpdateFacultyProfileRequest struct {
	ID           uint   `json:"id" binding:"required"`
	FirstName    string `json:"firstName" binding:"required"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName" binding:"required"`
	Biography    string `json:"biography"`
	DepartmentID *uint  `json:"departmentId"`
	WebsiteLink  string `json:"websiteLink"`
	Office       string `json:"office"`
	Title        string `json:"title"`
}

type WorkExperienceRequest struct {
	Description string `json:"description" binding:"required"`
	Employer    string `json:"employer" binding:"required"`
	Title       string `json:"title" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate"`
}

type WorkExperienceUpdateRequest struct {
	ID uint `json:"id" binding:"required"`
	WorkExperienceRequest
}

type DocumentCreationRequest struct {
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=resume transcript"`
	IsDefault bool   `json:"isDefault"`
	Document  []byte `json:"document" binding:"required"`
}

type SendMessageRequest struct {
	Content    string `json:"content" binding:"required"`
	ReceiverID uint   `json:"receiverId" binding:"required"`
}

type CreateCollegeRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateDepartmentRequest struct {
	Name      string `json:"name" binding:"required"`
	CollegeID uint   `json:"collegeId" binding:"required"`
}
