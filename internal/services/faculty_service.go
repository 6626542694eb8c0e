package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/gorm"
)

type FacultyService struct {
	DB *gorm.DB
}

func NewFacultyService(db *gorm.DB) *FacultyService {
	return &FacultyService{DB: db}
}

// GetProfile returns a faculty member profile with its display relations.
func (s *FacultyService) GetProfile(ctx context.Context, facultyMemberID uint) (*models.FacultyMember, error) {
	var faculty models.FacultyMember
	err := s.DB.WithContext(ctx).
		Preload("User").
		Preload("Department").
		Preload("Department.College").
		First(&faculty, facultyMemberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: faculty member %d", ErrNotFound, facultyMemberID)
	}
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// UpdateProfile edits the caller's own faculty profile.
func (s *FacultyService) UpdateProfile(ctx context.Context, session dtos.SessionUser, req dtos.UpdateFacultyProfileRequest) error {
	if session.Role != models.RoleFacultyMember {
		return fmt.Errorf("%w: user is not a faculty member", ErrUnauthorized)
	}
	if session.SpecificUserID != req.ID {
		return fmt.Errorf("%w: user is not owner of the profile", ErrUnauthorized)
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var faculty models.FacultyMember
		if err := tx.First(&faculty, req.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: faculty member %d", ErrNotFound, req.ID)
			}
			return err
		}

		userUpdates := map[string]any{
			"first_name":  req.FirstName,
			"middle_name": req.MiddleName,
			"last_name":   req.LastName,
			"biography":   req.Biography,
		}
		if err := tx.Model(&models.User{}).Where("id = ?", faculty.UserID).Updates(userUpdates).Error; err != nil {
			return err
		}

		facultyUpdates := map[string]any{
			"department_id": req.DepartmentID,
			"website_link":  req.WebsiteLink,
			"office":        req.Office,
			"title":         req.Title,
		}
		return tx.Model(&faculty).Updates(facultyUpdates).Error
	})
}
