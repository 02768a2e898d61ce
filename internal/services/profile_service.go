package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"covoit/internal/models/db_models"
	"covoit/internal/models/request_models"
	"covoit/internal/models/response_models"
	"covoit/internal/repositories"
	"covoit/pkg/utils"
)

type ProfileService interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	accountRepo repositories.AccountRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, accountRepo repositories.AccountRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		accountRepo: accountRepo,
	}
}

func (p *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	account, err := p.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile, err := p.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	return toProfileResponse(account, profile), nil
}

// UpdateProfile changes the contact details only. The login phone on the
// account stays as registered.
func (p *profileService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	familyName := strings.TrimSpace(request.FamilyName)
	givenName := strings.TrimSpace(request.GivenName)
	if familyName == "" || givenName == "" {
		return nil, utils.ErrMissingName
	}
	phone, ok := utils.NormalizePhone(request.Phone)
	if !ok {
		return nil, utils.ErrInvalidPhone
	}

	account, err := p.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile, err := p.profileRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrAccountNotFound
	}

	profile.FamilyName = familyName
	profile.GivenName = givenName
	profile.Phone = phone
	if err := p.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toProfileResponse(account, profile), nil
}

func toProfileResponse(account *db_models.Account, profile *db_models.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		ID:          account.ID.String(),
		FamilyName:  profile.FamilyName,
		GivenName:   profile.GivenName,
		Phone:       profile.Phone,
		Initials:    initials(profile.GivenName, profile.FamilyName),
		Role:        account.Role,
		IsActive:    account.IsActive,
		MemberSince: account.CreatedAt,
	}
}
