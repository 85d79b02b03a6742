package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/pkg/apperror"
	"github.com/adilkhanov/hrdoc-backend/internal/repository"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthService инкапсулирует аутентификацию операторов.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
}

// LoginInput содержит данные для входа.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult итог авторизации.
type AuthResult struct {
	User      *models.User `json:"user"`
	TokenPair *TokenPair   `json:"tokens"`
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository, tokenManager *TokenManager) *AuthService {
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
	}
}

// Login проверяет учётные данные и выдаёт пару токенов.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	pair, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось выпустить токены: %w", err)
	}

	return &AuthResult{User: user, TokenPair: pair}, nil
}

// Refresh обновляет пару токенов по refresh токену.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.tokenManager.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	pair, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось выпустить токены: %w", err)
	}

	return &AuthResult{User: user, TokenPair: pair}, nil
}

// HashPassword хеширует пароль оператора для создания учётной записи.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth service: не удалось захешировать пароль: %w", err)
	}
	return string(hash), nil
}
