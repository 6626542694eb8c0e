package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"github.com/rmatch-app/rmatch-backend/internal/search"
)

func validJobRequest(departmentID uint) dtos.JobCreationRequest {
	return dtos.JobCreationRequest{
		Title:        "Algorithms Grader",
		Description:  "Grade weekly problem sets.",
		HoursPerWeek: 10,
		MinSalary:    1500,
		TargetYears:  []string{"Junior", "Senior"},
		Type:         []string{"grader"},
		StartDate:    "2026-09-20",
		DepartmentID: departmentID,
	}
}

func createOpenJob(t *testing.T, db *gorm.DB, facultyID, departmentID uint, title string) models.Job {
	t.Helper()
	job := models.Job{
		FacultyMemberID: facultyID,
		DepartmentID:    departmentID,
		Title:           title,
		HoursPerWeek:    10,
		MinSalary:       1500,
		Type:            []string{"grader"},
		StartDate:       time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		Status:          models.JobStatusOpen,
	}
	require.NoError(t, db.Create(&job).Error)
	return job
}

func TestCreateJob(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	faculty := createFaculty(t, db, "Edith", "Clarke")
	svc := NewJobService(db)

	job, err := svc.Create(context.Background(), facultySession(faculty), validJobRequest(deptA))
	require.NoError(t, err)
	assert.Equal(t, faculty.ID, job.FacultyMemberID)
	assert.Equal(t, models.JobStatusOpen, job.Status)

	// Students cannot post.
	_, err = svc.Create(context.Background(), dtos.SessionUser{Role: models.RoleStudent}, validJobRequest(deptA))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Unknown department is a validation failure on create (postings must
	// not dangle), unlike search filters where stale ids match nothing.
	req := validJobRequest(999)
	_, err = svc.Create(context.Background(), facultySession(faculty), req)
	assert.ErrorIs(t, err, ErrValidation)

	// Salary bounds must be ordered.
	req = validJobRequest(deptA)
	req.MaxSalary = ptr(100.0)
	_, err = svc.Create(context.Background(), facultySession(faculty), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateJobOwnership(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	other := createFaculty(t, db, "Hedy", "Lamarr")
	job := createOpenJob(t, db, owner.ID, deptA, "Grader")
	svc := NewJobService(db)

	req := dtos.JobUpdateRequest{ID: job.ID, JobCreationRequest: validJobRequest(deptA)}
	req.Title = "Senior Grader"

	err := svc.Update(context.Background(), facultySession(other), req)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, svc.Update(context.Background(), facultySession(owner), req))

	var reloaded models.Job
	require.NoError(t, db.First(&reloaded, job.ID).Error)
	assert.Equal(t, "Senior Grader", reloaded.Title)

	req.ID = 9999
	err = svc.Update(context.Background(), facultySession(owner), req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteJobRemovesApplications(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	student := createStudent(t, db, "Ada", "Lovelace", &deptA, nil, nil, nil)
	job := createOpenJob(t, db, owner.ID, deptA, "Grader")
	require.NoError(t, db.Create(&models.JobApplication{JobID: job.ID, StudentID: student.ID}).Error)
	svc := NewJobService(db)

	require.NoError(t, svc.Delete(context.Background(), facultySession(owner), job.ID))

	var applications int64
	require.NoError(t, db.Model(&models.JobApplication{}).Where("job_id = ?", job.ID).Count(&applications).Error)
	assert.Zero(t, applications)
}

func TestApplyAndWithdraw(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	student := createStudent(t, db, "Ada", "Lovelace", &deptA, nil, nil, nil)
	job := createOpenJob(t, db, owner.ID, deptA, "Grader")
	svc := NewJobService(db)

	session := studentSession(student)

	require.NoError(t, svc.Apply(context.Background(), session, job.ID))

	// Second application to the same job is rejected.
	err := svc.Apply(context.Background(), session, job.ID)
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, svc.Withdraw(context.Background(), session, job.ID))

	// Nothing left to withdraw.
	err = svc.Withdraw(context.Background(), session, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Faculty sessions cannot apply.
	err = svc.Apply(context.Background(), facultySession(owner), job.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.Apply(context.Background(), session, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyRejectsClosedAndExpired(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	student := createStudent(t, db, "Ada", "Lovelace", &deptA, nil, nil, nil)
	svc := NewJobService(db)

	closed := createOpenJob(t, db, owner.ID, deptA, "Closed Grader")
	require.NoError(t, db.Model(&closed).Update("status", models.JobStatusClosed).Error)

	expired := createOpenJob(t, db, owner.ID, deptA, "Expired Grader")
	past := time.Now().Add(-24 * time.Hour)
	require.NoError(t, db.Model(&expired).Update("expiration_date", past).Error)

	err := svc.Apply(context.Background(), studentSession(student), closed.ID)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.Apply(context.Background(), studentSession(student), expired.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplicantsRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	other := createFaculty(t, db, "Hedy", "Lamarr")
	job := createOpenJob(t, db, owner.ID, deptA, "Grader")
	svc := NewJobService(db)

	filter, err := search.NewApplicantFilter(dtos.ApplicantSearchQuery{
		JobID: "1", Page: "1", NumOfItems: "10",
	})
	require.NoError(t, err)

	// Non-owner fails identically for an existing and a missing job.
	_, _, err = svc.Applicants(context.Background(), facultySession(other), job.ID, filter)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = svc.Applicants(context.Background(), facultySession(other), 9999, filter)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Students cannot list applicants at all.
	_, _, err = svc.Applicants(context.Background(), dtos.SessionUser{Role: models.RoleStudent}, job.ID, filter)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestApplicantsFiltersApplicantsOnly(t *testing.T) {
	db := newTestDB(t)
	deptA, deptB := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	job := createOpenJob(t, db, owner.ID, deptA, "Grader")

	applicantA := createStudent(t, db, "Ada", "Lovelace", &deptA, ptr("Senior"), ptr(3.9), nil)
	applicantB := createStudent(t, db, "Carl", "Gauss", &deptB, ptr("Junior"), ptr(3.6), nil)
	createStudent(t, db, "Alan", "Turing", &deptA, ptr("Senior"), ptr(3.8), nil) // never applied

	require.NoError(t, db.Create(&models.JobApplication{JobID: job.ID, StudentID: applicantA.ID}).Error)
	require.NoError(t, db.Create(&models.JobApplication{JobID: job.ID, StudentID: applicantB.ID}).Error)

	svc := NewJobService(db)

	filter, err := search.NewApplicantFilter(dtos.ApplicantSearchQuery{
		JobID: idString(job.ID), Page: "1", NumOfItems: "10",
	})
	require.NoError(t, err)

	applicants, total, err := svc.Applicants(context.Background(), facultySession(owner), job.ID, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, applicants, 2)

	// Student filter dimensions narrow the applicant pool.
	filter, err = search.NewApplicantFilter(dtos.ApplicantSearchQuery{
		JobID:         idString(job.ID),
		DepartmentIDs: []string{idString(deptA)},
		Page:          "1",
		NumOfItems:    "10",
	})
	require.NoError(t, err)

	applicants, total, err = svc.Applicants(context.Background(), facultySession(owner), job.ID, filter)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Lovelace", applicants[0].LastName)
}

func TestJobSearch(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	svc := NewJobService(db)

	grader := createOpenJob(t, db, owner.ID, deptA, "Algorithms Grader")

	tutor := models.Job{
		FacultyMemberID: owner.ID,
		DepartmentID:    deptA,
		Title:           "Calculus Tutor",
		HoursPerWeek:    20,
		MinSalary:       2000,
		Type:            []string{"tutor", "other"},
		StartDate:       time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Status:          models.JobStatusOpen,
	}
	require.NoError(t, db.Create(&tutor).Error)

	closed := createOpenJob(t, db, owner.ID, deptA, "Closed Grader")
	require.NoError(t, db.Model(&closed).Update("status", models.JobStatusClosed).Error)

	mustJobFilter := func(q dtos.JobSearchQuery) search.JobFilter {
		f, err := search.NewJobFilter(q)
		require.NoError(t, err)
		return f
	}

	// Only open postings are searchable.
	jobs, total, err := svc.Search(context.Background(), mustJobFilter(dtos.JobSearchQuery{
		Page: "1", NumOfItems: "10",
	}))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, jobs, 2)

	// Title substring, case-insensitive.
	jobs, total, err = svc.Search(context.Background(), mustJobFilter(dtos.JobSearchQuery{
		Title: "grader", Page: "1", NumOfItems: "10",
	}))
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, grader.ID, jobs[0].ID)

	// Type tag membership.
	jobs, total, err = svc.Search(context.Background(), mustJobFilter(dtos.JobSearchQuery{
		Types: []string{"tutor"}, Page: "1", NumOfItems: "10",
	}))
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, tutor.ID, jobs[0].ID)

	// Salary floor.
	_, total, err = svc.Search(context.Background(), mustJobFilter(dtos.JobSearchQuery{
		MinSalary: "1800", Page: "1", NumOfItems: "10",
	}))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// Hours ceiling.
	_, total, err = svc.Search(context.Background(), mustJobFilter(dtos.JobSearchQuery{
		HoursPerWeek: "15", Page: "1", NumOfItems: "10",
	}))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCloseExpired(t *testing.T) {
	db := newTestDB(t)
	deptA, _ := seedDepartments(t, db)
	owner := createFaculty(t, db, "Edith", "Clarke")
	svc := NewJobService(db)

	fresh := createOpenJob(t, db, owner.ID, deptA, "Fresh")
	future := time.Now().Add(48 * time.Hour)
	require.NoError(t, db.Model(&fresh).Update("expiration_date", future).Error)

	stale := createOpenJob(t, db, owner.ID, deptA, "Stale")
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Model(&stale).Update("expiration_date", past).Error)

	createOpenJob(t, db, owner.ID, deptA, "No Expiry")

	closed, err := svc.CloseExpired(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, closed)

	var reloaded models.Job
	require.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, models.JobStatusClosed, reloaded.Status)

	reloaded = models.Job{}
	require.NoError(t, db.First(&reloaded, fresh.ID).Error)
	assert.Equal(t, models.JobStatusOpen, reloaded.Status)
}
