package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

type FacultyHandler struct {
	FacultyService *services.FacultyService
}

func NewFacultyHandler(faculty *services.FacultyService) *FacultyHandler {
	return &FacultyHandler{FacultyService: faculty}
}

// UpdateProfile is POST /facultyMemberProfile/update-profile
func (h *FacultyHandler) UpdateProfile(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.UpdateFacultyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.FacultyService.UpdateProfile(c.Request.Context(), session, req); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetProfile is GET /facultyMemberProfile/get-profile/:facultyMemberId
func (h *FacultyHandler) GetProfile(c *gin.Context) {
	facultyMemberID, ok := parseUintParam(c, "facultyMemberId")
	if !ok {
		return
	}

	faculty, err := h.FacultyService.GetProfile(c.Request.Context(), facultyMemberID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facultyMember": faculty})
}
