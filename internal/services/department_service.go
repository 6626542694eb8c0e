package services

import (
	"context"
	"fmt"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/gorm"
)

// DepartmentService manages the reference data the client renders as
// filter options: colleges, departments, courses.
type DepartmentService struct {
	DB *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

func (s *DepartmentService) CreateCollege(ctx context.Context, req dtos.CreateCollegeRequest) (*models.College, error) {
	var existing int64
	if err := s.DB.WithContext(ctx).Model(&models.College{}).Where("name = ?", req.Name).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: college already exists", ErrValidation)
	}

	college := models.College{Name: req.Name}
	if err := s.DB.WithContext(ctx).Create(&college).Error; err != nil {
		return nil, err
	}
	return &college, nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, req dtos.CreateDepartmentRequest) (*models.Department, error) {
	var colleges int64
	if err := s.DB.WithContext(ctx).Model(&models.College{}).Where("id = ?", req.CollegeID).Count(&colleges).Error; err != nil {
		return nil, err
	}
	if colleges == 0 {
		return nil, fmt.Errorf("%w: college does not exist", ErrValidation)
	}

	department := models.Department{Name: req.Name, CollegeID: req.CollegeID}
	if err := s.DB.WithContext(ctx).Create(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

func (s *DepartmentService) ListColleges(ctx context.Context) ([]models.College, error) {
	var colleges []models.College
	err := s.DB.WithContext(ctx).Preload("Departments").Order("name ASC").Find(&colleges).Error
	return colleges, err
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var departments []models.Department
	err := s.DB.WithContext(ctx).Preload("College").Order("name ASC").Find(&departments).Error
	return departments, err
}

func (s *DepartmentService) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.WithContext(ctx).Order("short_title ASC").Find(&courses).Error
	return courses, err
}
