package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/mail"
	"github.com/rmatch-app/rmatch-backend/internal/models"
)

// recordingMailer captures outgoing mail for assertions.
type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

func newUserService(t *testing.T) (*UserService, *recordingMailer) {
	t.Helper()
	mailer := &recordingMailer{}
	return NewUserService(newTestDB(t), mailer, "http://localhost:3000"), mailer
}

var _ mail.Mailer = (*recordingMailer)(nil)

func TestRegisterStudent(t *testing.T) {
	svc, mailer := newUserService(t)

	err := svc.Register(context.Background(), dtos.SignUpRequest{
		Email:     "ada@school.edu",
		Password:  "supersecret",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleStudent,
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, svc.DB.Where("email = ?", "ada@school.edu").First(&user).Error)
	assert.NotEqual(t, "supersecret", user.Password)
	assert.False(t, user.EmailVerified)

	var student models.Student
	require.NoError(t, svc.DB.Where("user_id = ?", user.ID).First(&student).Error)

	// Verification mail went out with a stored key.
	assert.Equal(t, []string{"ada@school.edu"}, mailer.sent)
	var keys int64
	require.NoError(t, svc.DB.Model(&models.VerificationKey{}).Where("user_id = ?", user.ID).Count(&keys).Error)
	assert.EqualValues(t, 1, keys)
}

func TestRegisterFacultyMember(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.Register(context.Background(), dtos.SignUpRequest{
		Email:     "edith@school.edu",
		Password:  "supersecret",
		FirstName: "Edith",
		LastName:  "Clarke",
		Role:      models.RoleFacultyMember,
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, svc.DB.Where("email = ?", "edith@school.edu").First(&user).Error)
	var faculty models.FacultyMember
	require.NoError(t, svc.DB.Where("user_id = ?", user.ID).First(&faculty).Error)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	req := dtos.SignUpRequest{
		Email:     "ada@school.edu",
		Password:  "supersecret",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleStudent,
	}
	require.NoError(t, svc.Register(context.Background(), req))

	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignIn(t *testing.T) {
	svc, _ := newUserService(t)

	require.NoError(t, svc.Register(context.Background(), dtos.SignUpRequest{
		Email:     "ada@school.edu",
		Password:  "supersecret",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleStudent,
	}))

	session, err := svc.SignIn(context.Background(), dtos.SignInRequest{
		Email:    "ada@school.edu",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, session.Role)
	assert.NotZero(t, session.UserID)
	assert.NotZero(t, session.SpecificUserID)
	assert.Equal(t, "Ada", session.FirstName)

	// Wrong password and unknown email fail identically.
	_, err = svc.SignIn(context.Background(), dtos.SignInRequest{
		Email:    "ada@school.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SignIn(context.Background(), dtos.SignInRequest{
		Email:    "nobody@school.edu",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyEmail(t *testing.T) {
	svc, _ := newUserService(t)

	require.NoError(t, svc.Register(context.Background(), dtos.SignUpRequest{
		Email:     "ada@school.edu",
		Password:  "supersecret",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleStudent,
	}))

	var key models.VerificationKey
	require.NoError(t, svc.DB.First(&key).Error)

	require.NoError(t, svc.VerifyEmail(context.Background(), key.Key))

	var user models.User
	require.NoError(t, svc.DB.First(&user, key.UserID).Error)
	assert.True(t, user.EmailVerified)

	// Key is single use.
	err := svc.VerifyEmail(context.Background(), key.Key)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEmail(t *testing.T) {
	svc, mailer := newUserService(t)

	require.NoError(t, svc.Register(context.Background(), dtos.SignUpRequest{
		Email:     "ada@school.edu",
		Password:  "supersecret",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      models.RoleStudent,
	}))
	require.NoError(t, svc.Register(context.Background(), dtos.SignUpRequest{
		Email:     "alan@school.edu",
		Password:  "supersecret",
		FirstName: "Alan",
		LastName:  "Turing",
		Role:      models.RoleStudent,
	}))

	var ada models.User
	require.NoError(t, svc.DB.Where("email = ?", "ada@school.edu").First(&ada).Error)

	// Same email: rejected.
	err := svc.UpdateEmail(context.Background(), ada.ID, "ada@school.edu")
	assert.ErrorIs(t, err, ErrValidation)

	// Taken email: rejected.
	err = svc.UpdateEmail(context.Background(), ada.ID, "alan@school.edu")
	assert.ErrorIs(t, err, ErrValidation)

	mailCount := len(mailer.sent)
	require.NoError(t, svc.UpdateEmail(context.Background(), ada.ID, "ada.king@school.edu"))

	var reloaded models.User
	require.NoError(t, svc.DB.First(&reloaded, ada.ID).Error)
	assert.Equal(t, "ada.king@school.edu", reloaded.Email)
	assert.False(t, reloaded.EmailVerified)
	assert.Len(t, mailer.sent, mailCount+1)
}
