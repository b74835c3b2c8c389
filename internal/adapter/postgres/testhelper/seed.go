package testhelper

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// NewTenant returns a random guild id so parallel tests sharing one database
// never see each other's rows.
func NewTenant() domain.TenantID {
	return domain.TenantID(rand.Int63n(1<<62) + 1)
}

// SeedMemoryAt inserts a memory with an explicit date_added, bypassing the
// column default. Used to build deterministic orderings.
func SeedMemoryAt(t *testing.T, pool *pgxpool.Pool, tenant domain.TenantID, content string, at time.Time) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO memories (guild_id, content, date_added) VALUES ($1, $2, $3) RETURNING id`,
		int64(tenant), content, at,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedMemoryAt: %v", err)
	}
	return id
}

// SeedDateIdea inserts a date idea row as-is (no category normalization).
func SeedDateIdea(t *testing.T, pool *pgxpool.Pool, tenant domain.TenantID, idea, category string, completed bool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO date_ideas (guild_id, idea, category, completed) VALUES ($1, $2, $3, $4) RETURNING id`,
		int64(tenant), idea, category, completed,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedDateIdea: %v", err)
	}
	return id
}
