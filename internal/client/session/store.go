package session

import (
	"context"

	"github.com/dmitrijs2005/gophprofile/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophprofile/internal/common"
)

// Store persists the session token under common.TokenStorageKey.
type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Get returns the stored token. An empty stored value counts as absent.
func (s *Store) Get(ctx context.Context) (string, bool, error) {
	token, ok, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", false, err
	}
	if !ok || token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (s *Store) Set(ctx context.Context, token string) error {
	return s.repo.Set(ctx, common.TokenStorageKey, token)
}

func (s *Store) Delete(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenStorageKey)
}
