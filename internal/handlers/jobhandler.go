package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/search"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{JobService: jobs}
}

// Create is POST /job/create
func (h *JobHandler) Create(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), session, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update is POST /job/update
func (h *JobHandler) Update(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.JobService.Update(c.Request.Context(), session, req); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete is DELETE /job/delete/:jobId
func (h *JobHandler) Delete(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	jobID, ok := parseUintParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.JobService.Delete(c.Request.Context(), session, jobID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Close is POST /job/close/:jobId
func (h *JobHandler) Close(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	jobID, ok := parseUintParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.JobService.Close(c.Request.Context(), session, jobID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Read is GET /job/read — the job search.
func (h *JobHandler) Read(c *gin.Context) {
	var q dtos.JobSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	filter, err := search.NewJobFilter(q)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	jobs, total, err := h.JobService.Search(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":      jobs,
		"jobsCount": total,
	})
}

// GetNewJobs is GET /job/get-new-jobs
func (h *JobHandler) GetNewJobs(c *gin.Context) {
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

	jobs, total, err := h.JobService.GetNewJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"jobs":      jobs,
		"jobsCount": total,
	})
}

// Apply is POST /job/apply/:jobId
func (h *JobHandler) Apply(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	jobID, ok := parseUintParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.JobService.Apply(c.Request.Context(), session, jobID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// Withdraw is POST /job/withdraw/:jobId
func (h *JobHandler) Withdraw(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	jobID, ok := parseUintParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.JobService.Withdraw(c.Request.Context(), session, jobID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Applicants is GET /job/applicants — applicant search over a posting the
// caller owns.
func (h *JobHandler) Applicants(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var q dtos.ApplicantSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	jobID, err := strconv.ParseUint(q.JobID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId must be an integer"})
		return
	}

	filter, err := search.NewApplicantFilter(q)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	applicants, total, err := h.JobService.Applicants(c.Request.Context(), session, uint(jobID), filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applicants":      applicants,
		"applicantsCount": total,
	})
}
