package client

import (
	"context"

	"github.com/edyapups/Beneburg-Archived/internal/client/models"
)

// Client is the user directory API contract.
type Client interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetCurrentUser(ctx context.Context) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
}

// TokenSource yields the bearer token to present on a request.
// It is consulted on every call, so a rotated token applies to the next
// request. An empty token means no Authorization header is sent.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}
