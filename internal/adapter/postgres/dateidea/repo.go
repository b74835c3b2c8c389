// Package dateidea implements the DateIdea repository using PostgreSQL.
package dateidea

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/ustwo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/internal/retrieval"
)

const tableName = "date_ideas"

// Repo provides date idea persistence backed by PostgreSQL.
type Repo struct {
	q      postgres.Querier
	policy *retrieval.Policy
}

// New creates a new date idea repository.
func New(q postgres.Querier, policy *retrieval.Policy) *Repo {
	return &Repo{q: q, policy: policy}
}

// Create inserts a date idea and returns its id. The category is stored
// exactly as given; callers normalize it beforehand.
func (r *Repo) Create(ctx context.Context, tenant domain.TenantID, idea, category string) (int64, error) {
	query, args, err := postgres.Builder().
		Insert(tableName).
		Columns("guild_id", "idea", "category").
		Values(int64(tenant), idea, category).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert date idea: %w", err)
	}

	var id int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "insert date idea")
	}

	return id, nil
}

// List returns every date idea of the guild ordered by category, then by
// insertion order within a category.
func (r *Repo) List(ctx context.Context, tenant domain.TenantID) ([]domain.DateIdea, error) {
	query, args, err := postgres.Builder().
		Select("id", "guild_id", "idea", "category", "completed").
		From(tableName).
		Where(squirrel.Eq{"guild_id": int64(tenant)}).
		OrderBy("category ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list date ideas: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list date ideas")
	}
	defer rows.Close()

	ideas := make([]domain.DateIdea, 0)
	for rows.Next() {
		var (
			d              domain.DateIdea
			guildID        int64
			idea, category *string
			completed      *bool
		)
		if err := rows.Scan(&d.ID, &guildID, &idea, &category, &completed); err != nil {
			return nil, postgres.MapError(err, "list date ideas")
		}
		d.TenantID = domain.TenantID(guildID)
		d.Idea = deref(idea)
		d.Category = deref(category)
		d.Completed = completed != nil && *completed
		ideas = append(ideas, d)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list date ideas")
	}

	return ideas, nil
}

// PickRandom returns the text of one date idea chosen uniformly at random
// among the guild's ideas whose category matches the filter with SQL LIKE.
// Returns domain.ErrNotFound when nothing matches.
func (r *Repo) PickRandom(ctx context.Context, tenant domain.TenantID, filter retrieval.CategoryFilter) (string, error) {
	b := postgres.Builder().
		Select("idea").
		From(tableName).
		Where(squirrel.Eq{"guild_id": int64(tenant)}).
		OrderBy("id")

	if pattern, ok := filter.Pattern(); ok {
		b = b.Where(squirrel.Like{"category": pattern})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", fmt.Errorf("build pick date idea: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return "", postgres.MapError(err, "pick date idea")
	}
	defer rows.Close()

	var candidates []string
	for rows.Next() {
		var idea *string
		if err := rows.Scan(&idea); err != nil {
			return "", postgres.MapError(err, "pick date idea")
		}
		candidates = append(candidates, deref(idea))
	}
	if err := rows.Err(); err != nil {
		return "", postgres.MapError(err, "pick date idea")
	}

	idea, err := retrieval.Pick(r.policy, candidates)
	if err != nil {
		return "", fmt.Errorf("pick date idea: %w", err)
	}

	return idea, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
