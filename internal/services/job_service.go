package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"github.com/rmatch-app/rmatch-backend/internal/search"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create stores a new posting owned by the calling faculty member.
func (s *JobService) Create(ctx context.Context, session dtos.SessionUser, req dtos.JobCreationRequest) (*models.Job, error) {
	if session.Role != models.RoleFacultyMember {
		return nil, fmt.Errorf("%w: user is not a faculty member", ErrUnauthorized)
	}

	job, err := s.jobFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	job.FacultyMemberID = session.SpecificUserID

	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Update edits an existing posting after the ownership check.
func (s *JobService) Update(ctx context.Context, session dtos.SessionUser, req dtos.JobUpdateRequest) error {
	existing, err := s.ownedJob(ctx, session, req.ID)
	if err != nil {
		return err
	}

	job, err := s.jobFromRequest(ctx, req.JobCreationRequest)
	if err != nil {
		return err
	}

	existing.Title = job.Title
	existing.Description = job.Description
	existing.HoursPerWeek = job.HoursPerWeek
	existing.MinSalary = job.MinSalary
	existing.MaxSalary = job.MaxSalary
	existing.TargetYears = job.TargetYears
	existing.Type = job.Type
	existing.StartDate = job.StartDate
	existing.EndDate = job.EndDate
	existing.ExpirationDate = job.ExpirationDate
	existing.DepartmentID = job.DepartmentID
	return s.DB.WithContext(ctx).Save(existing).Error
}

// Delete removes a posting and its applications after the ownership check.
func (s *JobService) Delete(ctx context.Context, session dtos.SessionUser, jobID uint) error {
	job, err := s.ownedJob(ctx, session, jobID)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.JobApplication{}).Error; err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
}

// Close marks a posting closed after the ownership check.
func (s *JobService) Close(ctx context.Context, session dtos.SessionUser, jobID uint) error {
	job, err := s.ownedJob(ctx, session, jobID)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(job).Update("status", models.JobStatusClosed).Error
}

// Search lists open postings matching the job filter, ordered by id for
// deterministic paging.
func (s *JobService) Search(ctx context.Context, f search.JobFilter) ([]models.Job, int64, error) {
	var total int64
	if err := applyJobFilter(s.jobBase(ctx), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := applyJobFilter(s.jobBase(ctx), f).
		Preload("Department").
		Preload("Department.College").
		Preload("FacultyMember").
		Preload("FacultyMember.User").
		Order("jobs.id ASC").
		Offset(f.Offset()).
		Limit(f.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// GetNewJobs lists the most recently posted open jobs.
func (s *JobService) GetNewJobs(ctx context.Context, page, pageSize int) ([]models.Job, int64, error) {
	base := s.jobBase(ctx)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := s.jobBase(ctx).
		Preload("Department").
		Preload("FacultyMember").
		Preload("FacultyMember.User").
		Order("jobs.created_at DESC, jobs.id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Apply records a student's application. One application per job per
// student; closed or expired postings reject new applications.
func (s *JobService) Apply(ctx context.Context, session dtos.SessionUser, jobID uint) error {
	if session.Role != models.RoleStudent {
		return fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}

	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: job %d", ErrNotFound, jobID)
		}
		return err
	}
	if job.Status != models.JobStatusOpen {
		return fmt.Errorf("%w: job is closed", ErrValidation)
	}
	if job.ExpirationDate != nil && job.ExpirationDate.Before(time.Now()) {
		return fmt.Errorf("%w: job has expired", ErrValidation)
	}

	var existing int64
	err := s.DB.WithContext(ctx).Model(&models.JobApplication{}).
		Where("job_id = ? AND student_id = ?", jobID, session.SpecificUserID).
		Count(&existing).Error
	if err != nil {
		return err
	}
	if existing > 0 {
		return fmt.Errorf("%w: already applied to this job", ErrValidation)
	}

	application := models.JobApplication{JobID: jobID, StudentID: session.SpecificUserID}
	return s.DB.WithContext(ctx).Create(&application).Error
}

// Withdraw removes the caller's own application.
func (s *JobService) Withdraw(ctx context.Context, session dtos.SessionUser, jobID uint) error {
	if session.Role != models.RoleStudent {
		return fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}

	result := s.DB.WithContext(ctx).
		Where("job_id = ? AND student_id = ?", jobID, session.SpecificUserID).
		Delete(&models.JobApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no application for job %d", ErrNotFound, jobID)
	}
	return nil
}

// Applicants runs the applicant search for a posting the caller owns. The
// ownership check fails the same way whether the job is missing or owned by
// someone else, so the endpoint leaks nothing about other people's postings.
func (s *JobService) Applicants(ctx context.Context, session dtos.SessionUser, jobID uint, f search.StudentFilter) ([]dtos.StudentPreview, int64, error) {
	if session.Role != models.RoleFacultyMember {
		return nil, 0, fmt.Errorf("%w: user is not a faculty member", ErrUnauthorized)
	}

	var job models.Job
	err := s.DB.WithContext(ctx).First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && job.FacultyMemberID != session.SpecificUserID) {
		return nil, 0, fmt.Errorf("%w: user does not own this job", ErrUnauthorized)
	}
	if err != nil {
		return nil, 0, err
	}

	base := func() *gorm.DB {
		return s.DB.WithContext(ctx).
			Model(&models.Student{}).
			Joins("JOIN users ON users.id = students.user_id").
			Joins("JOIN job_applications ON job_applications.student_id = students.id AND job_applications.job_id = ?", jobID)
	}

	var total int64
	if err := applyStudentFilter(base(), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var students []models.Student
	err = applyStudentFilter(base(), f).
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

// CloseExpired flips open postings past their expiration date to closed.
// Run by the cron sweeper.
func (s *JobService) CloseExpired(ctx context.Context) (int64, error) {
	result := s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ? AND expiration_date IS NOT NULL AND expiration_date < ?", models.JobStatusOpen, time.Now()).
		Update("status", models.JobStatusClosed)
	return result.RowsAffected, result.Error
}

func (s *JobService) jobBase(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Model(&models.Job{}).
		Where("jobs.status = ?", models.JobStatusOpen)
}

func applyJobFilter(q *gorm.DB, f search.JobFilter) *gorm.DB {
	if f.Title != "" {
		q = q.Where("LOWER(jobs.title) LIKE ?", containsPattern(f.Title))
	}
	if len(f.Types) > 0 {
		// Type is a JSON-serialized string array; match any requested tag
		// against the serialized form.
		sub := q.Session(&gorm.Session{NewDB: true})
		typeMatch := sub
		for i, t := range f.Types {
			pattern := "%\"" + t + "\"%"
			if i == 0 {
				typeMatch = sub.Where("jobs.type LIKE ?", pattern)
			} else {
				typeMatch = typeMatch.Or("jobs.type LIKE ?", pattern)
			}
		}
		q = q.Where(typeMatch)
	}
	if f.StartDate != nil {
		q = q.Where("jobs.start_date >= ?", *f.StartDate)
	}
	if f.MinSalary != nil {
		q = q.Where("jobs.min_salary >= ?", *f.MinSalary)
	}
	if f.HoursPerWeek != nil {
		q = q.Where("jobs.hours_per_week <= ?", *f.HoursPerWeek)
	}
	return q
}

// jobFromRequest validates and converts a creation/update body. The target
// department must exist; stale option lists surface as a validation error
// here because the posting would otherwise dangle.
func (s *JobService) jobFromRequest(ctx context.Context, req dtos.JobCreationRequest) (*models.Job, error) {
	var departments int64
	if err := s.DB.WithContext(ctx).Model(&models.Department{}).Where("id = ?", req.DepartmentID).Count(&departments).Error; err != nil {
		return nil, err
	}
	if departments == 0 {
		return nil, fmt.Errorf("%w: department does not exist", ErrValidation)
	}

	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	expirationDate, err := parseOptionalDate("expirationDate", req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	if req.MaxSalary != nil && *req.MaxSalary < req.MinSalary {
		return nil, fmt.Errorf("%w: maxSalary must not be below minSalary", ErrValidation)
	}

	return &models.Job{
		Title:          req.Title,
		Description:    req.Description,
		HoursPerWeek:   req.HoursPerWeek,
		MinSalary:      req.MinSalary,
		MaxSalary:      req.MaxSalary,
		TargetYears:    req.TargetYears,
		Type:           req.Type,
		StartDate:      startDate,
		EndDate:        endDate,
		ExpirationDate: expirationDate,
		DepartmentID:   req.DepartmentID,
		Status:         models.JobStatusOpen,
	}, nil
}

func (s *JobService) ownedJob(ctx context.Context, session dtos.SessionUser, jobID uint) (*models.Job, error) {
	if session.Role != models.RoleFacultyMember {
		return nil, fmt.Errorf("%w: user is not a faculty member", ErrUnauthorized)
	}
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job %d", ErrNotFound, jobID)
		}
		return nil, err
	}
	if job.FacultyMemberID != session.SpecificUserID {
		return nil, fmt.Errorf("%w: user does not own this job", ErrUnauthorized)
	}
	return &job, nil
}
