package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/gorm"
)

type WorkExperienceService struct {
	DB *gorm.DB
}

func NewWorkExperienceService(db *gorm.DB) *WorkExperienceService {
	return &WorkExperienceService{DB: db}
}

// Create adds a work experience to the calling student's profile.
func (s *WorkExperienceService) Create(ctx context.Context, session dtos.SessionUser, req dtos.WorkExperienceRequest) (*models.WorkExperience, error) {
	if session.Role != models.RoleStudent {
		return nil, fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}

	experience, err := s.fromRequest(req)
	if err != nil {
		return nil, err
	}
	experience.StudentID = session.SpecificUserID

	if err := s.DB.WithContext(ctx).Create(experience).Error; err != nil {
		return nil, err
	}
	return experience, nil
}

// List returns a student's work experiences, visible to any signed-in user.
func (s *WorkExperienceService) List(ctx context.Context, studentID uint) ([]models.WorkExperience, error) {
	var experiences []models.WorkExperience
	err := s.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("start_date DESC, id DESC").
		Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

// Update edits the caller's own work experience.
func (s *WorkExperienceService) Update(ctx context.Context, session dtos.SessionUser, req dtos.WorkExperienceUpdateRequest) error {
	existing, err := s.owned(ctx, session, req.ID)
	if err != nil {
		return err
	}

	experience, err := s.fromRequest(req.WorkExperienceRequest)
	if err != nil {
		return err
	}

	existing.Description = experience.Description
	existing.Employer = experience.Employer
	existing.Title = experience.Title
	existing.StartDate = experience.StartDate
	existing.EndDate = experience.EndDate
	return s.DB.WithContext(ctx).Save(existing).Error
}

// Delete removes the caller's own work experience.
func (s *WorkExperienceService) Delete(ctx context.Context, session dtos.SessionUser, id uint) error {
	existing, err := s.owned(ctx, session, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Delete(existing).Error
}

func (s *WorkExperienceService) owned(ctx context.Context, session dtos.SessionUser, id uint) (*models.WorkExperience, error) {
	if session.Role != models.RoleStudent {
		return nil, fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}

	var experience models.WorkExperience
	if err := s.DB.WithContext(ctx).First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: work experience %d", ErrNotFound, id)
		}
		return nil, err
	}
	if experience.StudentID != session.SpecificUserID {
		return nil, fmt.Errorf("%w: user is not owner of the work experience", ErrUnauthorized)
	}
	return &experience, nil
}

func (s *WorkExperienceService) fromRequest(req dtos.WorkExperienceRequest) (*models.WorkExperience, error) {
	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrValidation)
	}

	return &models.WorkExperience{
		Description: req.Description,
		Employer:    req.Employer,
		Title:       req.Title,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}
