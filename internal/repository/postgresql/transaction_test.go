package postgresql

import (
	"context"
	"testing"

	"github.com/caretrack/agency-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct{ pgx.Tx }

func TestGetQuerier_PrefersBoundTransaction(t *testing.T) {
	t.Parallel()

	db := &database.DB{}
	tx := stubTx{}

	q := GetQuerier(WithTx(context.Background(), tx), db)

	assert.Equal(t, tx, q)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	t.Parallel()

	db := &database.DB{}

	q := GetQuerier(context.Background(), db)

	pool, ok := q.(*pgxpool.Pool)
	require.True(t, ok)
	assert.Equal(t, db.Pool, pool)
}
