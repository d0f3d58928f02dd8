package service

import (
	"context"
	"errors"
	"strings"

	"github.com/BuzzLyutic/todo-api/internal/auth"
	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUserExists = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
)

type RegisterInput struct {
	FirstName string `json:"firstname"`
	LastName string `json:"lastname"`
	Email string `json:"email"`
	Password string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type AuthService struct {
	users repo.UserRepository
	hasher *auth.Hasher
	tokens *auth.TokenService
}

func NewAuthService(users repo.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register создает пользователя и сразу выдает токен, как и при логине
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (string, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return "", ErrValidation
	}
	if in.Password != in.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", err
	}

	user, err := s.users.Create(ctx, model.User{
		FirstName: in.FirstName,
		LastName: in.LastName,
		Email: in.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, repo.ErrorConflict) { // email уже занят
		return "", ErrUserExists
	}
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrorNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", ErrWrongPassword
	}

	return s.tokens.Issue(user)
}
