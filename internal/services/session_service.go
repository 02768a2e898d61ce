package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"covoit/internal/models/db_models"
	"covoit/internal/repositories"
	mem "covoit/pkg/memcache"
	"covoit/pkg/utils"
)

// SessionService issues and resolves bearer tokens. A token stays valid
// until it expires, is revoked, or its account gets disabled.
type SessionService interface {
	Issue(ctx context.Context, account *db_models.Account) (string, time.Time, error)
	Resolve(ctx context.Context, token string) (*utils.Session, error)
	Revoke(ctx context.Context, token string) error
}

type sessionService struct {
	secret      []byte
	ttl         time.Duration
	revoked     mem.RevokedTokenStore
	accountRepo repositories.AccountRepository
}

func NewSessionService(secret []byte, ttl time.Duration, revoked mem.RevokedTokenStore, accountRepo repositories.AccountRepository) SessionService {
	return &sessionService{
		secret:      secret,
		ttl:         ttl,
		revoked:     revoked,
		accountRepo: accountRepo,
	}
}

func (s *sessionService) Issue(_ context.Context, account *db_models.Account) (string, time.Time, error) {
	token, claims, err := utils.CreateToken(s.secret, account.ID, account.Role, s.ttl)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, claims.ExpiresAt.Time, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*utils.Session, error) {
	claims, err := utils.ValidateToken(s.secret, token)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		logrus.WithError(err).Error("revoked token lookup failed")
		return nil, utils.ErrDatabaseError
	}
	if revoked {
		return nil, utils.ErrUnauthorized
	}

	account, err := s.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUnauthorized
	}
	if !account.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	return &utils.Session{
		UserID:    account.ID,
		Role:      account.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *sessionService) Revoke(ctx context.Context, token string) error {
	claims, err := utils.ValidateToken(s.secret, token)
	if err != nil {
		return utils.ErrUnauthorized
	}
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		logrus.WithError(err).Error("token revocation failed")
		return utils.ErrDatabaseError
	}
	return nil
}
