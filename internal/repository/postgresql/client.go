package postgresql

import (
	"context"
	"fmt"

	"github.com/caretrack/agency-backend-go/internal/domain/client"
	"github.com/caretrack/agency-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clientRepository struct {
	db *database.DB
}

// GetByID implements client.ClientRepository.
func (c *clientRepository) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, full_name, address, home_latitude, home_longitude, phone, is_active,
			   created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var cl client.Client
	err := q.QueryRow(ctx, query, id).Scan(
		&cl.ID, &cl.FullName, &cl.Address, &cl.HomeLatitude, &cl.HomeLongitude,
		&cl.Phone, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client by ID: %w", err)
	}

	return cl, nil
}

// Exists implements client.ClientRepository.
func (c *clientRepository) Exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check client existence: %w", err)
	}

	return exists, nil
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepository{db: db}
}
