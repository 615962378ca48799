package services

import (
	"context"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/models"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
	"github.com/leonelalz/nutritrack-api-sub000/utils"
)

type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(ctx context.Context, email, password, fullName string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if appErr := apperrors.As(err); appErr == nil || appErr.Type != apperrors.TypeNotFound {
			return err
		}
	}
	if existing != nil {
		return apperrors.DuplicateName("user", email)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return s.users.Create(ctx, &models.User{
		Email:      email,
		Password:   hashed,
		FullName:   fullName,
		WeightUnit: "KG",
	})
}

// Authenticate checks credentials and returns a signed JWT.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", apperrors.New(apperrors.TypeValidation, "BAD_CREDENTIALS", "incorrect email or password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
