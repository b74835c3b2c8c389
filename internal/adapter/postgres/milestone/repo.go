// Package milestone implements the Milestone repository using PostgreSQL.
package milestone

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/ustwo-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

const tableName = "milestones"

// Repo provides milestone persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new milestone repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a milestone and returns its id. eventDate is stored as the
// YYYY-MM-DD text it arrived as; validation happens upstream.
func (r *Repo) Create(ctx context.Context, tenant domain.TenantID, eventName, eventDate string) (int64, error) {
	query, args, err := postgres.Builder().
		Insert(tableName).
		Columns("guild_id", "event_name", "event_date").
		Values(int64(tenant), eventName, eventDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert milestone: %w", err)
	}

	var id int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "insert milestone")
	}

	return id, nil
}

// List returns every milestone of the guild. Order is unspecified.
func (r *Repo) List(ctx context.Context, tenant domain.TenantID) ([]domain.Milestone, error) {
	query, args, err := postgres.Builder().
		Select("id", "guild_id", "event_name", "event_date").
		From(tableName).
		Where(squirrel.Eq{"guild_id": int64(tenant)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list milestones: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list milestones")
	}
	defer rows.Close()

	milestones := make([]domain.Milestone, 0)
	for rows.Next() {
		var (
			m               domain.Milestone
			guildID         int64
			name, eventDate *string
		)
		if err := rows.Scan(&m.ID, &guildID, &name, &eventDate); err != nil {
			return nil, postgres.MapError(err, "list milestones")
		}
		m.TenantID = domain.TenantID(guildID)
		if name != nil {
			m.EventName = *name
		}
		if eventDate != nil {
			m.EventDate = *eventDate
		}
		milestones = append(milestones, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list milestones")
	}

	return milestones, nil
}
