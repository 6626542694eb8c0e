package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

type DocumentHandler struct {
	DocumentService *services.DocumentService
}

func NewDocumentHandler(documents *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{DocumentService: documents}
}

// Create is POST /document/create
func (h *DocumentHandler) Create(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.DocumentCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	doc, err := h.DocumentService.Create(c.Request.Context(), session, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Read is GET /document/read — the caller's own documents.
func (h *DocumentHandler) Read(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	documents, err := h.DocumentService.List(c.Request.Context(), session)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

// Delete is DELETE /document/delete/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.DocumentService.Delete(c.Request.Context(), session, id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
