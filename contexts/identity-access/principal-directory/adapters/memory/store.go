package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"ideabazaar/contexts/identity-access/principal-directory/domain/entities"
	domainerrors "ideabazaar/contexts/identity-access/principal-directory/domain/errors"
)

// Store is an in-memory principal repository for local runtime and tests.
type Store struct {
	mu         sync.RWMutex
	principals map[string]entities.Principal
	byEmail    map[string]string
	sequence   uint64
}

func NewStore(seed []entities.Principal) *Store {
	principals := make(map[string]entities.Principal, len(seed))
	byEmail := make(map[string]string, len(seed))
	for _, principal := range seed {
		principals[principal.PrincipalID] = principal
		byEmail[principal.Email] = principal.PrincipalID
	}
	return &Store{
		principals: principals,
		byEmail:    byEmail,
	}
}

func (s *Store) GetPrincipal(_ context.Context, principalID string) (entities.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	principal, ok := s.principals[principalID]
	if !ok {
		return entities.Principal{}, domainerrors.ErrPrincipalNotFound
	}
	return principal, nil
}

func (s *Store) CreatePrincipal(_ context.Context, principal entities.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.principals[principal.PrincipalID]; exists {
		return domainerrors.ErrDuplicatePrincipal
	}
	if _, exists := s.byEmail[principal.Email]; exists {
		return domainerrors.ErrDuplicatePrincipal
	}
	s.principals[principal.PrincipalID] = principal
	s.byEmail[principal.Email] = principal.PrincipalID
	return nil
}

func (s *Store) UpdatePrincipal(_ context.Context, principal entities.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.principals[principal.PrincipalID]
	if !ok {
		return domainerrors.ErrPrincipalNotFound
	}
	if existing.Email != principal.Email {
		delete(s.byEmail, existing.Email)
		s.byEmail[principal.Email] = principal.PrincipalID
	}
	s.principals[principal.PrincipalID] = principal
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("pr-%d", value), nil
}
