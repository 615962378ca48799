package services

import (
	"context"

	"github.com/leonelalz/nutritrack-api-sub000/apperrors"
	"github.com/leonelalz/nutritrack-api-sub000/repository"
	"github.com/leonelalz/nutritrack-api-sub000/utils"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// ProfilePatch applies partial updates; nil means leave the field unchanged.
// Weight is interpreted in the unit in effect after the patch.
type ProfilePatch struct {
	FullName   *string  `json:"full_name"`
	HeightCM   *float64 `json:"height_cm"`
	Weight     *float64 `json:"weight"`
	WeightUnit *string  `json:"weight_unit"` // "KG" | "LBS"
}

type ProfileView struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	HeightCM    float64 `json:"height_cm"`
	Weight      float64 `json:"weight"` // in the preferred unit
	WeightUnit  string  `json:"weight_unit"`
	BMI         float64 `json:"bmi,omitempty"`
	BMICategory string  `json:"bmi_category,omitempty"`
}

func (s *UserService) GetProfile(ctx context.Context, userID uint) (*ProfileView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		HeightCM:   user.HeightCM,
		Weight:     utils.DisplayWeight(user.WeightKG, user.WeightUnit),
		WeightUnit: user.WeightUnit,
	}
	if bmi, err := utils.CalculateBMI(user.HeightCM, user.WeightKG); err == nil {
		view.BMI = bmi
		view.BMICategory = utils.BMICategory(bmi)
	}
	return view, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*ProfileView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.WeightUnit != nil {
		unit := *patch.WeightUnit
		if unit != "KG" && unit != "LBS" {
			return nil, apperrors.New(apperrors.TypeValidation, "INVALID_UNIT", "weight unit must be KG or LBS")
		}
		user.WeightUnit = unit
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.HeightCM != nil {
		user.HeightCM = *patch.HeightCM
	}
	if patch.Weight != nil {
		user.WeightKG = utils.NormalizeWeight(*patch.Weight, user.WeightUnit)
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
