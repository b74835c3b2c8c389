// Package memory implements the Memory repository using PostgreSQL.
// Every query is scoped to a single guild.
package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ustwo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/internal/retrieval"
)

const tableName = "memories"

var selectColumns = []string{"id", "guild_id", "content", "image_url", "date_added"}

// Repo provides memory persistence backed by PostgreSQL.
type Repo struct {
	q      postgres.Querier
	policy *retrieval.Policy
}

// New creates a new memory repository.
func New(q postgres.Querier, policy *retrieval.Policy) *Repo {
	return &Repo{q: q, policy: policy}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a memory and returns its id. date_added is assigned by the
// database. The caller is responsible for supplying content or an image URL.
func (r *Repo) Create(ctx context.Context, tenant domain.TenantID, content, imageURL *string) (int64, error) {
	query, args, err := postgres.Builder().
		Insert(tableName).
		Columns("guild_id", "content", "image_url").
		Values(int64(tenant), content, imageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert memory: %w", err)
	}

	var id int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "insert memory")
	}

	return id, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every memory of the guild, most recent first.
func (r *Repo) List(ctx context.Context, tenant domain.TenantID) ([]domain.Memory, error) {
	query := selectByTenant(tenant).OrderBy("date_added DESC", "id DESC")

	memories, err := r.query(ctx, query, "list memories")
	if err != nil {
		return nil, err
	}

	return memories, nil
}

// PickRandom returns one memory of the guild chosen uniformly at random.
// Returns domain.ErrNotFound if the guild has no memories.
func (r *Repo) PickRandom(ctx context.Context, tenant domain.TenantID) (domain.Memory, error) {
	candidates, err := r.query(ctx, selectByTenant(tenant).OrderBy("id"), "pick memory")
	if err != nil {
		return domain.Memory{}, err
	}

	m, err := retrieval.Pick(r.policy, candidates)
	if err != nil {
		return domain.Memory{}, fmt.Errorf("pick memory: %w", err)
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectByTenant(tenant domain.TenantID) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"guild_id": int64(tenant)})
}

func (r *Repo) query(ctx context.Context, b squirrel.SelectBuilder, op string) ([]domain.Memory, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, op)
	}
	defer rows.Close()

	memories, err := scanMemories(rows)
	if err != nil {
		return nil, postgres.MapError(err, op)
	}

	return memories, nil
}

func scanMemories(rows pgx.Rows) ([]domain.Memory, error) {
	memories := make([]domain.Memory, 0)
	for rows.Next() {
		var (
			m         domain.Memory
			guildID   int64
			dateAdded *time.Time
		)
		if err := rows.Scan(&m.ID, &guildID, &m.Content, &m.ImageURL, &dateAdded); err != nil {
			return nil, err
		}
		m.TenantID = domain.TenantID(guildID)
		if dateAdded != nil {
			m.CreatedAt = *dateAdded
		}
		memories = append(memories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return memories, nil
}
