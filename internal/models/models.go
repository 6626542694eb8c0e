package models

import (
	"time"

	"gorm.io/gorm"
)

// Role values stored on User.Role.
const (
	RoleStudent       = "student"
	RoleFacultyMember = "facultyMember"
)

// ClassStandingValues is the closed set of academic year classifications.
var ClassStandingValues = []string{"Freshman", "Sophomore", "Junior", "Senior"}

// JobTypeValues is the closed set of job posting types.
var JobTypeValues = []string{"grader", "assistant", "researcher", "volunteer", "tutor", "other"}

// Job status values.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Document type values.
const (
	DocumentTypeResume     = "resume"
	DocumentTypeTranscript = "transcript"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Never serialized; bcrypt hash only.
	Password      string `gorm:"not null" json:"-"`
	FirstName     string `gorm:"not null" json:"firstName"`
	MiddleName    string `json:"middleName"`
	LastName      string `gorm:"not null" json:"lastName"`
	Biography     string `gorm:"type:text" json:"biography"`
	Role          string `gorm:"not null" json:"role"`
	EmailVerified bool   `json:"emailVerified"`
}

type College struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"uniqueIndex;not null" json:"name"`
	// 'omitempty' prevents infinite loops when fetching a Department -> College -> Departments -> ...
	Departments []Department `json:"departments,omitempty"`
}

type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name      string  `gorm:"not null" json:"name"`
	CollegeID uint    `json:"collegeId"`
	College   College `json:"college"`
}

type Course struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ShortTitle   string `gorm:"not null" json:"shortTitle"`
	FullTitle    string `json:"fullTitle"`
	DepartmentID *uint  `json:"departmentId"`
}

type Student struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"user"`

	DepartmentID *uint       `json:"departmentId"`
	Department   *Department `json:"department,omitempty"`

	// University-issued student id, e.g. "862005123".
	SID           string   `gorm:"column:sid" json:"sid"`
	GPA           *float64 `gorm:"type:decimal(3,2)" json:"gpa"`
	ClassStanding *string  `json:"classStanding"`

	Courses         []Course         `gorm:"many2many:student_courses" json:"courses,omitempty"`
	WorkExperiences []WorkExperience `json:"workExperiences,omitempty"`
	JobApplications []JobApplication `json:"jobApplications,omitempty"`
	Documents       []Document       `json:"documents,omitempty"`
}

type FacultyMember struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"user"`

	DepartmentID *uint       `json:"departmentId"`
	Department   *Department `json:"department,omitempty"`

	WebsiteLink string `json:"websiteLink"`
	Office      string `json:"office"`
	Title       string `json:"title"`

	Jobs []Job `json:"jobs,omitempty"`
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FacultyMemberID uint          `gorm:"not null" json:"facultyMemberId"`
	FacultyMember   FacultyMember `json:"facultyMember,omitempty"`

	DepartmentID uint       `gorm:"not null" json:"departmentId"`
	Department   Department `json:"department,omitempty"`

	Title        string   `gorm:"not null" json:"title"`
	Description  string   `gorm:"type:text" json:"description"`
	HoursPerWeek float64  `json:"hoursPerWeek"`
	MinSalary    float64  `json:"minSalary"`
	MaxSalary    *float64 `json:"maxSalary"`

	// Class standings the posting targets and the posting's type tags.
	TargetYears []string `gorm:"serializer:json" json:"targetYears"`
	Type        []string `gorm:"serializer:json" json:"type"`

	StartDate      time.Time  `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	ExpirationDate *time.Time `json:"expirationDate"`

	Status string `gorm:"default:'open'" json:"status"`

	Applications []JobApplication `json:"applications,omitempty"`
}

type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID     uint    `gorm:"not null;uniqueIndex:idx_job_student" json:"jobId"`
	Job       Job     `json:"job,omitempty"`
	StudentID uint    `gorm:"not null;uniqueIndex:idx_job_student" json:"studentId"`
	Student   Student `json:"student,omitempty"`
}

type WorkExperience struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID   uint       `gorm:"not null" json:"studentId"`
	Description string     `gorm:"type:text" json:"description"`
	Employer    string     `json:"employer"`
	Title       string     `json:"title"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type Document struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	StudentID uint   `gorm:"not null" json:"studentId"`
	Name      string `gorm:"not null" json:"name"`
	Type      string `gorm:"not null" json:"type"`
	IsDefault bool   `json:"isDefault"`
	Data      []byte `json:"data"`
}

type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SenderID   uint   `gorm:"not null;index" json:"senderId"`
	ReceiverID uint   `gorm:"not null;index" json:"receiverId"`
	Content    string `gorm:"type:text;not null" json:"content"`
}

type VerificationKey struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Key    string `gorm:"uniqueIndex;not null" json:"-"`
	UserID uint   `gorm:"not null" json:"userId"`
}
