package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"github.com/rmatch-app/rmatch-backend/internal/search"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

type StudentHandler struct {
	StudentService *services.StudentService
}

func NewStudentHandler(students *services.StudentService) *StudentHandler {
	return &StudentHandler{StudentService: students}
}

// UpdateProfile is POST /student/update-profile
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.UpdateStudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.StudentService.UpdateProfile(c.Request.Context(), session, req); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetProfile is GET /student/get-profile/:studentId. Any signed-in user may
// view any profile; only mutation is owner-restricted.
func (h *StudentHandler) GetProfile(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}

	student, err := h.StudentService.GetProfile(c.Request.Context(), studentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"student": student})
}

// GetAppliedJobs is GET /student/get-applied-jobs
func (h *StudentHandler) GetAppliedJobs(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if session.Role != models.RoleStudent {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User is not a student"})
		return
	}

	var q dtos.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	page, pageSize, err := search.ParsePage(q)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	applications, total, err := h.StudentService.GetAppliedJobs(c.Request.Context(), session.SpecificUserID, page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobApplications":      applications,
		"jobApplicationsCount": total,
	})
}

// Search is GET /student/search
func (h *StudentHandler) Search(c *gin.Context) {
	var q dtos.StudentSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	filter, err := search.NewStudentFilter(q)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	previews, total, err := h.StudentService.Search(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"studentPreviews": previews,
		"studentsCount":   total,
	})
}
