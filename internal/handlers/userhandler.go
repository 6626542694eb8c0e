package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/services"
)

type UserHandler struct {
	UserService *services.UserService
	Tokens      *auth.Manager
}

func NewUserHandler(users *services.UserService, tokens *auth.Manager) *UserHandler {
	return &UserHandler{UserService: users, Tokens: tokens}
}

// SignUp is POST /user/sign-up
func (h *UserHandler) SignUp(c *gin.Context) {
	var req dtos.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.UserService.Register(c.Request.Context(), req); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// SignIn is POST /user/sign-in. On success the session token lands in the
// httpOnly cookie; the body carries the session user for the client state.
func (h *UserHandler) SignIn(c *gin.Context) {
	var req dtos.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	session, err := h.UserService.SignIn(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := h.Tokens.Sign(session.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	auth.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            session,
	})
}

// SignOut is GET /user/sign-out
func (h *UserHandler) SignOut(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"user":    dtos.SessionUser{},
		"success": true,
	})
}

// Authenticated is GET /user/authenticated; echoes the session the
// middleware resolved.
func (h *UserHandler) Authenticated(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":            session,
		"isAuthenticated": true,
	})
}

// UpdateEmail is POST /user/update-email
func (h *UserHandler) UpdateEmail(c *gin.Context) {
	session, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dtos.UpdateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.UserService.UpdateEmail(c.Request.Context(), session.UserID, req.Email); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// VerifyEmail is GET /user/verify/:key — public, the link lands here from
// the verification mail.
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	if err := h.UserService.VerifyEmail(c.Request.Context(), c.Param("key")); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
