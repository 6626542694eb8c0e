package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"github.com/rmatch-app/rmatch-backend/internal/search"
	"gorm.io/gorm"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

// Search runs the student search: one count over the filtered set, then one
// page fetch with the display joins preloaded. Page past the end comes back
// as an empty slice with the total still accurate.
func (s *StudentService) Search(ctx context.Context, f search.StudentFilter) ([]dtos.StudentPreview, int64, error) {
	var total int64
	if err := applyStudentFilter(s.studentBase(ctx), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []models.Student
	err := applyStudentFilter(s.studentBase(ctx), f).
		Preload("User").
		Preload("Department").
		Preload("Department.College").
		Order("students.id ASC").
		Offset(f.Offset()).
		Limit(f.PageSize).
		Find(&students).Error
	if err != nil {
		return nil, 0, err
	}

	return studentPreviews(students), total, nil
}

// GetProfile returns the full student profile with its display relations.
func (s *StudentService) GetProfile(ctx context.Context, studentID uint) (*models.Student, error) {
	var student models.Student
	err := s.DB.WithContext(ctx).
		Preload("User").
		Preload("Department").
		Preload("Department.College").
		Preload("Courses").
		Preload("WorkExperiences").
		First(&student, studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateProfile edits the caller's own student profile. The ownership check
// runs before any write.
func (s *StudentService) UpdateProfile(ctx context.Context, session dtos.SessionUser, req dtos.UpdateStudentProfileRequest) error {
	if session.Role != models.RoleStudent {
		return fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}
	if session.SpecificUserID != req.ID {
		return fmt.Errorf("%w: user is not owner of the profile", ErrUnauthorized)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: student %d", ErrNotFound, req.ID)
			}
			return err
		}

		userUpdates := map[string]any{
			"first_name":  req.FirstName,
			"middle_name": req.MiddleName,
			"last_name":   req.LastName,
			"biography":   req.Biography,
		}
		if err := tx.Model(&models.User{}).Where("id = ?", student.UserID).Updates(userUpdates).Error; err != nil {
			return err
		}

		studentUpdates := map[string]any{
			"department_id":  req.DepartmentID,
			"sid":            req.SID,
			"gpa":            req.GPA,
			"class_standing": req.ClassStanding,
		}
		if err := tx.Model(&student).Updates(studentUpdates).Error; err != nil {
			return err
		}

		// Stale course ids from the client's option list match nothing
		// instead of failing the whole update.
		var courses []models.Course
		if len(req.CourseIDs) > 0 {
			if err := tx.Where("id IN ?", req.CourseIDs).Find(&courses).Error; err != nil {
				return err
			}
		}
		return tx.Model(&student).Association("Courses").Replace(courses)
	})
}

// GetAppliedJobs lists the caller's job applications, newest last for a
// stable paging order.
func (s *StudentService) GetAppliedJobs(ctx context.Context, studentID uint, page, pageSize int) ([]models.JobApplication, int64, error) {
	var exists int64
	if err := s.DB.WithContext(ctx).Model(&models.Student{}).Where("id = ?", studentID).Count(&exists).Error; err != nil {
		return nil, 0, err
	}
	if exists == 0 {
		return nil, 0, fmt.Errorf("%w: student %d", ErrNotFound, studentID)
	}

	base := s.DB.WithContext(ctx).Model(&models.JobApplication{}).Where("student_id = ?", studentID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.JobApplication
	err := s.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Preload("Job").
		Preload("Job.Department").
		Preload("Job.FacultyMember").
		Preload("Job.FacultyMember.User").
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&applications).Error
	if err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

// studentBase is the student aggregate with the user join every filter
// dimension can rely on.
func (s *StudentService) studentBase(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Model(&models.Student{}).
		Joins("JOIN users ON users.id = students.user_id")
}

// applyStudentFilter composes the canonical filter onto a student query.
// Shared by student search and applicant search so both paths filter
// identically.
func applyStudentFilter(q *gorm.DB, f search.StudentFilter) *gorm.DB {
	if f.FirstName != "" {
		q = q.Where("LOWER(users.first_name) LIKE ?", containsPattern(f.FirstName))
	}
	if f.LastName != "" {
		q = q.Where("LOWER(users.last_name) LIKE ?", containsPattern(f.LastName))
	}
	if f.Email != "" {
		q = q.Where("LOWER(users.email) LIKE ?", containsPattern(f.Email))
	}
	if f.SID != "" {
		q = q.Where("students.sid LIKE ?", "%"+f.SID+"%")
	}

	if len(f.DepartmentIDs) > 0 {
		q = q.Where("students.department_id IN ?", f.DepartmentIDs)
	}

	// A full standings set is "no restriction": applying it as an IN would
	// silently drop students who never set a standing.
	if len(f.ClassStandings) > 0 && len(f.ClassStandings) < len(models.ClassStandingValues) {
		q = q.Where("students.class_standing IN ?", f.ClassStandings)
	}

	if len(f.CourseIDs) > 0 {
		q = q.Where("students.id IN (?)",
			q.Session(&gorm.Session{NewDB: true}).
				Table("student_courses").
				Select("student_id").
				Where("course_id IN ?", f.CourseIDs))
	}

	// gpa >= ? also excludes NULL gpa rows, which is the intended reading
	// of a minimum-GPA bound.
	if f.MinimumGPA != nil {
		q = q.Where("students.gpa >= ?", *f.MinimumGPA)
	}

	return q
}

func containsPattern(v string) string {
	return "%" + strings.ToLower(v) + "%"
}

func studentPreviews(students []models.Student) []dtos.StudentPreview {
	previews := make([]dtos.StudentPreview, 0, len(students))
	for _, st := range students {
		p := dtos.StudentPreview{
			ID:            st.ID,
			FirstName:     st.User.FirstName,
			MiddleName:    st.User.MiddleName,
			LastName:      st.User.LastName,
			Email:         st.User.Email,
			SID:           st.SID,
			GPA:           st.GPA,
			ClassStanding: st.ClassStanding,
		}
		if st.Department != nil {
			p.Department = st.Department.Name
			p.College = st.Department.College.Name
		}
		previews = append(previews, p)
	}
	return previews
}
