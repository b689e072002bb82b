// Package credentials keeps the bearer token the client authenticates with.
//
// A Store is handed to client.NewHTTPClient as its token source; the client
// calls Token before every request, so SetToken takes effect on the next call
// without rebuilding the client.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/edyapups/Beneburg-Archived/internal/client/repositories/metadata"
)

// TokenKey is the metadata key the token is persisted under.
const TokenKey = "token"

// ErrReadOnly is returned when a fixed token is asked to change.
var ErrReadOnly = errors.New("token is fixed by configuration")

// Store reads and replaces the current bearer token. An empty token means
// none is set. Tokens are opaque: no validation, no expiry tracking.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

// MetadataStore persists the token in the local metadata repository, so it
// survives restarts until overwritten or cleared.
type MetadataStore struct {
	repo metadata.Repository
}

func NewMetadataStore(repo metadata.Repository) *MetadataStore {
	return &MetadataStore{repo: repo}
}

func (s *MetadataStore) Token(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return string(v), nil
}

func (s *MetadataStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.ClearToken(ctx)
	}
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *MetadataStore) ClearToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// MemoryStore keeps the token in process memory only.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Token(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearToken(ctx context.Context) error {
	return s.SetToken(ctx, "")
}

// Static serves one fixed token, typically given on the command line.
// It never persists anything and refuses to be changed.
type Static string

func (s Static) Token(context.Context) (string, error) {
	return string(s), nil
}

func (Static) SetToken(context.Context, string) error {
	return ErrReadOnly
}

func (Static) ClearToken(context.Context) error {
	return ErrReadOnly
}
