// Package services holds the business rules. Services take validated
// input, return domain values or apperr errors, and never touch HTTP.
package services

import (
	"context"
	"errors"

	"github.com/chitralaya/chitralaya/app/models"
	"github.com/chitralaya/chitralaya/app/repositories"
	"github.com/chitralaya/chitralaya/app/services/apperr"
	"github.com/chitralaya/chitralaya/pkg/auth"
)

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required|max:100"`
	LastName  string `json:"lastName" validate:"nullable|max:100"`
	Email     string `json:"email" validate:"required|email"`
	Phone     string `json:"phone" validate:"nullable|digits:10"`
	Password  string `json:"password" validate:"required|min:8|max:72"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required|email"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdateInput struct {
	FirstName string `json:"firstName" validate:"nullable|max:100"`
	LastName  string `json:"lastName" validate:"nullable|max:100"`
	Phone     string `json:"phone" validate:"nullable|digits:10"`
}

// AuthResult pairs the issued token with the account it belongs to.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	taken, err := s.users.EmailTaken(input.Email)
	if err != nil {
		return nil, apperr.Server("Failed to check email", err)
	}
	if taken {
		return nil, apperr.Conflict("An account with this email already exists")
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Server("Failed to hash password", err)
	}

	user := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Password:  hashed,
		Role:      models.RoleUser,
		IsActive:  true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, apperr.Server("Failed to create account", err)
	}

	return s.issue(user)
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.Auth("Invalid email or password")
		}
		return nil, apperr.Server("Failed to load account", err)
	}

	if !user.IsActive {
		return nil, apperr.Auth("Account is disabled")
	}
	if !auth.CheckPassword(user.Password, input.Password) {
		return nil, apperr.Auth("Invalid email or password")
	}

	return s.issue(user)
}

func (s *AuthService) Profile(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("Account not found")
		}
		return nil, apperr.Server("Failed to load account", err)
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(userID uint, input ProfileUpdateInput) (*models.User, error) {
	user, err := s.Profile(userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := s.users.Save(user); err != nil {
		return nil, apperr.Server("Failed to update profile", err)
	}
	return user, nil
}

// Resolve backs the auth middleware: it maps a token subject onto the
// live account's role and active flag.
func (s *AuthService) Resolve(_ context.Context, userID uint) (string, bool, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return "", false, err
	}
	return user.Role, user.IsActive, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperr.Server("Failed to issue token", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
