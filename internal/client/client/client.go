package client

import (
	"context"

	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

// Client is the DummyJSON auth API as seen by the flows.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Me(ctx context.Context, token string) (models.User, error)
}
