package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// AuthService handles registration and credential checks.
type AuthService struct {
	users domain.UserRepository
}

func NewAuthService(users domain.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account. Emails are case-folded before the uniqueness
// check so Jane@Example.com and jane@example.com are the same account.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
	}

	// The unique index backs up the pre-check against concurrent registrations.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials. A missing account and a wrong password produce
// the same error so the response never says which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
