package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

// DepartmentHandler serves the reference data endpoints: colleges,
// departments, courses.
type DepartmentHandler struct {
	DepartmentService *services.DepartmentService
}

func NewDepartmentHandler(departments *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{DepartmentService: departments}
}

// CreateCollege is POST /college/create (faculty only)
func (h *DepartmentHandler) CreateCollege(c *gin.Context) {
	if !requireFaculty(c) {
		return
	}

	var req dtos.CreateCollegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	college, err := h.DepartmentService.CreateCollege(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, college)
}

// CreateDepartment is POST /department/create (faculty only)
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	if !requireFaculty(c) {
		return
	}

	var req dtos.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	department, err := h.DepartmentService.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

// ListColleges is GET /college/read
func (h *DepartmentHandler) ListColleges(c *gin.Context) {
	colleges, err := h.DepartmentService.ListColleges(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colleges": colleges})
}

// ListDepartments is GET /department/read
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.DepartmentService.ListDepartments(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"departments": departments})
}

// ListCourses is GET /course/read
func (h *DepartmentHandler) ListCourses(c *gin.Context) {
	courses, err := h.DepartmentService.ListCourses(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func requireFaculty(c *gin.Context) bool {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return false
	}
	if session.Role != models.RoleFacultyMember {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not a faculty member"})
		return false
	}
	return true
}
