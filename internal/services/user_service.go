package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/rmatch-app/rmatch-backend/internal/auth"
	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/mail"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	DB     *gorm.DB
	Mailer mail.Mailer
	// Base URL the verification link points at, e.g. the client origin.
	BaseURL string
}

func NewUserService(db *gorm.DB, mailer mail.Mailer, baseURL string) *UserService {
	return &UserService{DB: db, Mailer: mailer, BaseURL: baseURL}
}

// Register creates the account, its role-specific profile row, and kicks
// off email verification.
func (s *UserService) Register(ctx context.Context, req dtos.SignUpRequest) error {
	var existing int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", req.Email).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return fmt.Errorf("%w: email is already taken", ErrValidation)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch req.Role {
		case models.RoleStudent:
			return tx.Create(&models.Student{UserID: user.ID}).Error
		case models.RoleFacultyMember:
			return tx.Create(&models.FacultyMember{UserID: user.ID}).Error
		default:
			return fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
		}
	})
	if err != nil {
		return err
	}

	s.sendVerificationMail(ctx, user, "Welcome to R'match!\n\nYour account has been created.")
	return nil
}

// SignIn checks credentials and returns the session user the token is
// issued for. Wrong email and wrong password fail identically.
func (s *UserService) SignIn(ctx context.Context, req dtos.SignInRequest) (dtos.SessionUser, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dtos.SessionUser{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err != nil {
		return dtos.SessionUser{}, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return dtos.SessionUser{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return s.sessionFor(ctx, user)
}

// UpdateEmail changes the account email and restarts verification.
func (s *UserService) UpdateEmail(ctx context.Context, userID uint, newEmail string) error {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return err
	}

	if user.Email == newEmail {
		return fmt.Errorf("%w: the email is the same as your current email", ErrValidation)
	}

	var taken int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", newEmail).Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return fmt.Errorf("%w: the email is already taken by another user", ErrValidation)
	}

	updates := map[string]any{"email": newEmail, "email_verified": false}
	if err := s.DB.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	user.Email = newEmail
	s.sendVerificationMail(ctx, user, "Your email was successfully updated.")
	return nil
}

// VerifyEmail consumes a verification key and marks the account verified.
func (s *UserService) VerifyEmail(ctx context.Context, key string) error {
	var verificationKey models.VerificationKey
	err := s.DB.WithContext(ctx).Where("key = ?", key).First(&verificationKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: email verification unsuccessful", ErrNotFound)
	}
	if err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.User{}).
			Where("id = ?", verificationKey.UserID).
			Update("email_verified", true).Error
		if err != nil {
			return err
		}
		return tx.Delete(&verificationKey).Error
	})
}

// SessionForUser resolves the session view (role + specific profile id)
// for an already-authenticated user id.
func (s *UserService) SessionForUser(ctx context.Context, userID uint) (dtos.SessionUser, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, userID).Error; err != nil {
		return dtos.SessionUser{}, err
	}
	return s.sessionFor(ctx, user)
}

func (s *UserService) sessionFor(ctx context.Context, user models.User) (dtos.SessionUser, error) {
	session := dtos.SessionUser{
		UserID:    user.ID,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}

	switch user.Role {
	case models.RoleStudent:
		var student models.Student
		if err := s.DB.WithContext(ctx).Where("user_id = ?", user.ID).First(&student).Error; err != nil {
			return dtos.SessionUser{}, err
		}
		session.SpecificUserID = student.ID
	case models.RoleFacultyMember:
		var faculty models.FacultyMember
		if err := s.DB.WithContext(ctx).Where("user_id = ?", user.ID).First(&faculty).Error; err != nil {
			return dtos.SessionUser{}, err
		}
		session.SpecificUserID = faculty.ID
	default:
		return dtos.SessionUser{}, fmt.Errorf("unknown role %q on user %d", user.Role, user.ID)
	}
	return session, nil
}

// sendVerificationMail issues a fresh key and mails the link. Mail failures
// are logged, never surfaced: the account is already created and the user
// can re-request verification.
func (s *UserService) sendVerificationMail(ctx context.Context, user models.User, intro string) {
	key := models.VerificationKey{Key: uuid.NewString(), UserID: user.ID}
	if err := s.DB.WithContext(ctx).Create(&key).Error; err != nil {
		log.Println("Failed to store verification key:", err)
		return
	}

	body := fmt.Sprintf(
		"%s Please follow the link below to verify your email and complete your registration.\n\n%s/verify/%s",
		intro, s.BaseURL, key.Key,
	)
	if err := s.Mailer.Send(user.Email, "Verify your email address", body); err != nil {
		log.Println("Failed to send verification mail:", err)
	}
}
