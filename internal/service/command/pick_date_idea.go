package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/internal/retrieval"
)

// PickDateIdea lets fate choose a date idea, optionally within categories
// matching a LIKE pattern.
func (s *Service) PickDateIdea(ctx context.Context, input PickDateIdeaInput) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}

	idea, err := s.ideas.PickRandom(ctx, tenant, retrieval.NewCategoryFilter(input.Category))
	if errors.Is(err, domain.ErrNotFound) {
		return Reply{Text: "No ideas found."}, nil
	}
	if err != nil {
		return Reply{}, fmt.Errorf("pick date idea: %w", err)
	}

	return Reply{Text: fmt.Sprintf("Fate decides: You should do **%s**.", idea)}, nil
}
