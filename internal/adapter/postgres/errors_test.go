package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "list memories"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "pick memory")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if errors.Is(got, domain.ErrStoreUnavailable) {
		t.Errorf("MapError(ErrNoRows) must not be ErrStoreUnavailable: %v", got)
	}
	if want := "pick memory: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	got := MapError(wrapped, "pick date idea")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_StoreUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "connection refused", err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
		{name: "deadline", err: context.DeadlineExceeded},
		{name: "canceled", err: context.Canceled},
		{name: "pg error", err: &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01", Message: "terminating connection"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MapError(tt.err, "insert memory")
			if !errors.Is(got, domain.ErrStoreUnavailable) {
				t.Errorf("MapError(%v) does not wrap ErrStoreUnavailable: %v", tt.err, got)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("MapError(%v) lost the original error: %v", tt.err, got)
			}
			if errors.Is(got, domain.ErrNotFound) {
				t.Errorf("MapError(%v) must not be ErrNotFound", tt.err)
			}
		})
	}
}

func TestBuilder_DollarPlaceholders(t *testing.T) {
	t.Parallel()

	sql, args, err := Builder().
		Select("id").
		From("milestones").
		Where("guild_id = ?", int64(42)).
		ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if want := "SELECT id FROM milestones WHERE guild_id = $1"; sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != int64(42) {
		t.Errorf("args = %v", args)
	}
}
