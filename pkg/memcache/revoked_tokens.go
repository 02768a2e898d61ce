package mem

import (
	"context"
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out token ids until their natural expiry.
type RevokedTokenStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// PurgeExpired drops entries whose token has expired anyway.
	// Returns the number of removed ids.
	PurgeExpired(ctx context.Context) (int, error)
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = expiresAt
	return nil
}

func (s *RevokedTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[tokenID]
	if !ok {
		return false, nil
	}
	// an expired token is rejected by signature validation already
	return s.now().Before(expiresAt), nil
}

func (s *RevokedTokens) PurgeExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, expiresAt := range s.data {
		if !now.Before(expiresAt) {
			delete(s.data, id)
			removed++
		}
	}
	return removed, nil
}
