package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const bcryptCost = 10

// dummyHash is a throwaway bcrypt hash compared against when a login
// targets an unknown email, so response timing does not reveal whether
// the address is registered.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService) AuthService {
	return &authService{users: users, jwt: jwt}
}

// Register creates a new account with a bcrypt-hashed password. The
// plaintext never touches storage or logs. Uniqueness of the normalized
// email is left to the database constraint; a concurrent duplicate loses
// with ErrEmailTaken rather than overwriting.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, apperrors.ErrValidation
	}

	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, apperrors.ErrValidation
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password produce the identical error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// burn the same bcrypt cost as a real comparison
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
