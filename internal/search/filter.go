package search

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
)

// ErrInvalidFilter marks a filter that failed normalization: missing or
// non-numeric pagination, or an enum value outside its closed set. Handlers
// map it to a 400.
var ErrInvalidFilter = errors.New("invalid search filter")

// StudentFilter is the canonical filter for student and applicant searches.
// Text fields are "" when unconstrained; id slices are empty when
// unconstrained (an empty slice never means "match nothing"); ClassStandings
// is always fully populated, defaulting to every standing, so the composed
// query is identical whether the caller passed none or all.
type StudentFilter struct {
	FirstName string
	LastName  string
	Email     string
	SID       string

	DepartmentIDs  []uint
	ClassStandings []string
	CourseIDs      []uint
	MinimumGPA     *float64

	Page     int
	PageSize int
}

// Offset is the row offset of the requested page (1-indexed pages).
func (f StudentFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// JobFilter is the canonical filter for job searches. Zero values mean
// unconstrained except Types, which is empty when unconstrained.
type JobFilter struct {
	Title        string
	Types        []string
	StartDate    *time.Time
	MinSalary    *float64
	HoursPerWeek *float64

	Page     int
	PageSize int
}

func (f JobFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// NewStudentFilter normalizes the raw query into a StudentFilter.
func NewStudentFilter(q dtos.StudentSearchQuery) (StudentFilter, error) {
	page, pageSize, err := parsePagination(q.Page, q.NumOfItems)
	if err != nil {
		return StudentFilter{}, err
	}

	departmentIDs, err := parseIDs("departmentIds", q.DepartmentIDs)
	if err != nil {
		return StudentFilter{}, err
	}
	courseIDs, err := parseIDs("courseIds", q.CourseIDs)
	if err != nil {
		return StudentFilter{}, err
	}

	standings, err := normalizeClassStandings(q.ClassStandings)
	if err != nil {
		return StudentFilter{}, err
	}

	gpa, err := parseOptionalFloat("minimumGpa", q.MinimumGPA)
	if err != nil {
		return StudentFilter{}, err
	}

	return StudentFilter{
		FirstName:      q.FirstName,
		LastName:       q.LastName,
		Email:          q.Email,
		SID:            q.SID,
		DepartmentIDs:  departmentIDs,
		ClassStandings: standings,
		CourseIDs:      courseIDs,
		MinimumGPA:     gpa,
		Page:           page,
		PageSize:       pageSize,
	}, nil
}

// NewApplicantFilter normalizes the applicant-search query. The job id is
// parsed separately by the caller; only the student dimensions live here.
func NewApplicantFilter(q dtos.ApplicantSearchQuery) (StudentFilter, error) {
	return NewStudentFilter(dtos.StudentSearchQuery{
		DepartmentIDs:  q.DepartmentIDs,
		ClassStandings: q.ClassStandings,
		CourseIDs:      q.CourseIDs,
		MinimumGPA:     q.MinimumGPA,
		Page:           q.Page,
		NumOfItems:     q.NumOfItems,
	})
}

// NewJobFilter normalizes the raw job-search query into a JobFilter.
func NewJobFilter(q dtos.JobSearchQuery) (JobFilter, error) {
	page, pageSize, err := parsePagination(q.Page, q.NumOfItems)
	if err != nil {
		return JobFilter{}, err
	}

	for _, t := range q.Types {
		if !contains(models.JobTypeValues, t) {
			return JobFilter{}, fmt.Errorf("%w: unknown job type %q", ErrInvalidFilter, t)
		}
	}

	minSalary, err := parseOptionalFloat("minSalary", q.MinSalary)
	if err != nil {
		return JobFilter{}, err
	}
	hours, err := parseOptionalFloat("hoursPerWeek", q.HoursPerWeek)
	if err != nil {
		return JobFilter{}, err
	}

	var startDate *time.Time
	if q.StartDate != "" {
		d, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return JobFilter{}, fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidFilter)
		}
		startDate = &d
	}

	return JobFilter{
		Title:        q.Title,
		Types:        q.Types,
		StartDate:    startDate,
		MinSalary:    minSalary,
		HoursPerWeek: hours,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// ParsePage normalizes a bare pagination pair.
func ParsePage(q dtos.PageQuery) (page, pageSize int, err error) {
	return parsePagination(q.Page, q.NumOfItems)
}

func parsePagination(rawPage, rawNumOfItems string) (int, int, error) {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be a positive integer", ErrInvalidFilter)
	}
	pageSize, err := strconv.Atoi(rawNumOfItems)
	if err != nil || pageSize < 1 {
		return 0, 0, fmt.Errorf("%w: numOfItems must be a positive integer", ErrInvalidFilter)
	}
	return page, pageSize, nil
}

func parseIDs(field string, raw []string) ([]uint, error) {
	ids := make([]uint, 0, len(raw))
	for _, r := range raw {
		if r == "" {
			continue
		}
		id, err := strconv.ParseUint(r, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must contain integers", ErrInvalidFilter, field)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func normalizeClassStandings(raw []string) ([]string, error) {
	standings := make([]string, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		if !contains(models.ClassStandingValues, s) {
			return nil, fmt.Errorf("%w: unknown class standing %q", ErrInvalidFilter, s)
		}
		standings = append(standings, s)
	}
	// Absent means every standing, explicitly enumerated, so downstream
	// composition never sees an empty IN list.
	if len(standings) == 0 {
		standings = append(standings, models.ClassStandingValues...)
	}
	return standings, nil
}

func parseOptionalFloat(field, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be numeric", ErrInvalidFilter, field)
	}
	return &v, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
