// Package credentials registers accounts and verifies logins.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/models"
	"github.com/ManuelReschke/InkFox/app/repository"
	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
	"github.com/ManuelReschke/InkFox/internal/pkg/validation"
)

const (
	emailTakenMessage         = "The email has already been taken."
	invalidCredentialsMessage = "Invalid credentials."
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
// Both cases look the same to the caller.
var ErrInvalidCredentials = apperror.Authentication(invalidCredentialsMessage)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Store struct {
	users repository.UserRepository
}

func NewStore(users repository.UserRepository) *Store {
	return &Store{users: users}
}

// Register validates the input and creates the account with a bcrypt hash.
func (s *Store) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = models.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	taken, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, apperror.Field("email", emailTakenMessage)
	}

	user, err := models.NewUser(in.Name, in.Email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperror.Field("email", emailTakenMessage)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login returns the user whose email and password match.
func (s *Store) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	in.Email = models.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !user.CheckPassword(in.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// User loads the account behind an authenticated session.
func (s *Store) User(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthenticated()
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
