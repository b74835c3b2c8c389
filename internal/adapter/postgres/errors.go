package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// MapError classifies a store error for the caller:
//   - pgx.ErrNoRows becomes domain.ErrNotFound
//   - anything else (connectivity, timeouts, cancellation, SQL errors)
//     becomes domain.ErrStoreUnavailable
//
// The original error stays in the chain so errors.Is still sees it.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
