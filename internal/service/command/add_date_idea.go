package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// AddDateIdea stores a new date idea under a title-cased category.
func (s *Service) AddDateIdea(ctx context.Context, input AddDateIdeaInput) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}

	if err := input.Validate(); err != nil {
		return Reply{}, err
	}

	category := domain.NormalizeCategory(input.Category)
	idea := strings.TrimSpace(input.Idea)

	id, err := s.ideas.Create(ctx, tenant, idea, category)
	if err != nil {
		return Reply{}, fmt.Errorf("add date idea: %w", err)
	}

	s.log.InfoContext(ctx, "date idea added",
		slog.String("guild_id", tenant.String()),
		slog.Int64("idea_id", id),
		slog.String("category", category),
	)

	return Reply{Text: fmt.Sprintf("Added '%s' to the '%s' list.", idea, category)}, nil
}
