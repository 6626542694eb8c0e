package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmatch-app/rmatch-backend/internal/database"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
)

// newTestDB opens a fresh in-memory database with the full schema. A single
// connection keeps every query on the same :memory: instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func ptr[T any](v T) *T { return &v }

func idString(id uint) string { return fmt.Sprintf("%d", id) }

func createUser(t *testing.T, db *gorm.DB, email, first, last, role string) models.User {
	t.Helper()
	user := models.User{
		Email:     email,
		Password:  "x",
		FirstName: first,
		LastName:  last,
		Role:      role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createStudent(t *testing.T, db *gorm.DB, first, last string, departmentID *uint, standing *string, gpa *float64, courses []models.Course) models.Student {
	t.Helper()
	email := fmt.Sprintf("%s.%s@school.edu", first, last)
	user := createUser(t, db, email, first, last, models.RoleStudent)

	student := models.Student{
		UserID:        user.ID,
		DepartmentID:  departmentID,
		SID:           fmt.Sprintf("86%06d", user.ID),
		GPA:           gpa,
		ClassStanding: standing,
		Courses:       courses,
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func createFaculty(t *testing.T, db *gorm.DB, first, last string) models.FacultyMember {
	t.Helper()
	email := fmt.Sprintf("%s.%s@school.edu", first, last)
	user := createUser(t, db, email, first, last, models.RoleFacultyMember)

	faculty := models.FacultyMember{UserID: user.ID}
	require.NoError(t, db.Create(&faculty).Error)
	return faculty
}

func studentSession(s models.Student) dtos.SessionUser {
	return dtos.SessionUser{UserID: s.UserID, SpecificUserID: s.ID, Role: models.RoleStudent}
}

func facultySession(f models.FacultyMember) dtos.SessionUser {
	return dtos.SessionUser{UserID: f.UserID, SpecificUserID: f.ID, Role: models.RoleFacultyMember}
}

// seedDepartments creates a college with two departments and returns their
// ids. Department ids are fixed (5 and 6) so filter fixtures read plainly.
func seedDepartments(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	college := models.College{Name: "College of Natural Sciences"}
	require.NoError(t, db.Create(&college).Error)

	deptA := models.Department{ID: 5, Name: "Computer Science", CollegeID: college.ID}
	deptB := models.Department{ID: 6, Name: "Mathematics", CollegeID: college.ID}
	require.NoError(t, db.Create(&deptA).Error)
	require.NoError(t, db.Create(&deptB).Error)
	return deptA.ID, deptB.ID
}
