package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"covoit/internal/models/db_models"
	"covoit/internal/models/request_models"
	"covoit/internal/models/response_models"
	"covoit/internal/observability"
	"covoit/internal/repositories"
	"covoit/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.ProfileResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	sessions    SessionService
}

func NewAccountService(accountRepo repositories.AccountRepository, sessions SessionService) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		sessions:    sessions,
	}
}

// Register expects a request that passed binding. Names are checked again
// once trimmed and the phone once whitespace is stripped.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.ProfileResponse, error) {
	familyName := strings.TrimSpace(request.FamilyName)
	givenName := strings.TrimSpace(request.GivenName)
	if familyName == "" || givenName == "" {
		return nil, utils.ErrMissingName
	}

	phone, ok := utils.NormalizePhone(request.Phone)
	if !ok {
		return nil, utils.ErrInvalidPhone
	}

	existingAccount, err := a.accountRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrPhoneAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Phone:        phone,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
		IsActive:     true,
	}
	profile := &db_models.Profile{
		FamilyName: familyName,
		GivenName:  givenName,
		Phone:      phone,
	}

	if err := a.accountRepo.CreateWithProfile(ctx, account, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPhoneAlreadyExists
		}
		logrus.WithError(err).Error("account creation failed")
		return nil, utils.ErrDatabaseError
	}

	observability.AccountsCreatedTotal.Inc()
	logrus.WithField("account_id", account.ID).Info("account registered")

	return &response_models.ProfileResponse{
		ID:          account.ID.String(),
		FamilyName:  familyName,
		GivenName:   givenName,
		Phone:       phone,
		Initials:    initials(givenName, familyName),
		Role:        account.Role,
		IsActive:    true,
		MemberSince: account.CreatedAt,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	phone, ok := utils.NormalizePhone(request.Phone)
	if !ok {
		return nil, utils.ErrInvalidPhone
	}

	account, err := a.accountRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	token, expiresAt, err := a.sessions.Issue(ctx, account)
	if err != nil {
		logrus.WithError(err).Error("token generation failed")
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      account.Role,
	}, nil
}

func (a *AccountService) Logout(ctx context.Context, token string) error {
	return a.sessions.Revoke(ctx, token)
}
