package client

import "context"

// ClientRepository defines data access methods for clients.
type ClientRepository interface {
	// GetByID retrieves a client by ID
	GetByID(ctx context.Context, id string) (Client, error)

	// Exists reports whether a client with the given ID exists
	Exists(ctx context.Context, id string) (bool, error)
}
