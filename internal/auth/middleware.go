package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/gorm"
)

const contextUserKey = "sessionUser"

// Middleware authenticates the request from the session cookie and puts the
// resolved caller (role plus role-specific profile id) into the gin context.
// Every protected route group mounts this.
func Middleware(manager *Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userID, err := manager.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		session, err := resolveSession(db, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(contextUserKey, session)
		c.Next()
	}
}

// CurrentUser returns the session user the middleware stored.
func CurrentUser(c *gin.Context) (dtos.SessionUser, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return dtos.SessionUser{}, false
	}
	session, ok := v.(dtos.SessionUser)
	return session, ok
}

// SetSessionCookie writes the httpOnly session cookie.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(tokenTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

func resolveSession(db *gorm.DB, userID uint) (dtos.SessionUser, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return dtos.SessionUser{}, err
	}

	session := dtos.SessionUser{
		UserID:    user.ID,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	switch user.Role {
	case models.RoleStudent:
		var student models.Student
		if err := db.Where("user_id = ?", user.ID).First(&student).Error; err != nil {
			return dtos.SessionUser{}, err
		}
		session.SpecificUserID = student.ID
	case models.RoleFacultyMember:
		var faculty models.FacultyMember
		if err := db.Where("user_id = ?", user.ID).First(&faculty).Error; err != nil {
			return dtos.SessionUser{}, err
		}
		session.SpecificUserID = faculty.ID
	default:
		return dtos.SessionUser{}, errors.New("unknown role on user record")
	}

	return session, nil
}
