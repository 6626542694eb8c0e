package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

type WorkExperienceHandler struct {
	WorkExperienceService *services.WorkExperienceService
}

func NewWorkExperienceHandler(experiences *services.WorkExperienceService) *WorkExperienceHandler {
	return &WorkExperienceHandler{WorkExperienceService: experiences}
}

// Create is POST /workExperience/create
func (h *WorkExperienceHandler) Create(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	experience, err := h.WorkExperienceService.Create(c.Request.Context(), session, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

// Read is GET /workExperience/read/:studentId
func (h *WorkExperienceHandler) Read(c *gin.Context) {
	studentID, ok := parseUintParam(c, "studentId")
	if !ok {
		return
	}

	experiences, err := h.WorkExperienceService.List(c.Request.Context(), studentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workExperiences": experiences})
}

// Update is POST /workExperience/update
func (h *WorkExperienceHandler) Update(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.WorkExperienceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.WorkExperienceService.Update(c.Request.Context(), session, req); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete is DELETE /workExperience/delete/:id
func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.WorkExperienceService.Delete(c.Request.Context(), session, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
