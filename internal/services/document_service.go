package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/gorm"
)

type DocumentService struct {
	DB *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{DB: db}
}

// Create stores a document for the calling student. Marking it default
// clears any previous default of the same type.
func (s *DocumentService) Create(ctx context.Context, session dtos.SessionUser, req dtos.DocumentCreationRequest) (*models.Document, error) {
	if session.Role != models.RoleStudent {
		return nil, fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}

	doc := models.Document{
		StudentID: session.SpecificUserID,
		Name:      req.Name,
		Type:      req.Type,
		IsDefault: req.IsDefault,
		Data:      req.Document,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			err := tx.Model(&models.Document{}).
				Where("student_id = ? AND type = ?", session.SpecificUserID, req.Type).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&doc).Error
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns the calling student's documents.
func (s *DocumentService) List(ctx context.Context, session dtos.SessionUser) ([]models.Document, error) {
	if session.Role != models.RoleStudent {
		return nil, fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}

	var documents []models.Document
	err := s.DB.WithContext(ctx).
		Where("student_id = ?", session.SpecificUserID).
		Order("id ASC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// Delete removes the caller's own document.
func (s *DocumentService) Delete(ctx context.Context, session dtos.SessionUser, documentID uint) error {
	if session.Role != models.RoleStudent {
		return fmt.Errorf("%w: user is not a student", ErrUnauthorized)
	}

	var doc models.Document
	if err := s.DB.WithContext(ctx).First(&doc, documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: document %d", ErrNotFound, documentID)
		}
		return err
	}
	if doc.StudentID != session.SpecificUserID {
		return fmt.Errorf("%w: user is not owner of the document", ErrUnauthorized)
	}
	return s.DB.WithContext(ctx).Delete(&doc).Error
}
