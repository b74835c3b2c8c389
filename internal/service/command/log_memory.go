package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// LogMemory saves a memory to the guild's scrapbook.
func (s *Service) LogMemory(ctx context.Context, input LogMemoryInput) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}

	if err := input.Validate(); err != nil {
		return Reply{}, err
	}

	content := domain.TrimOrNil(input.Content)
	imageURL := domain.TrimOrNil(input.ImageURL)

	id, err := s.memories.Create(ctx, tenant, content, imageURL)
	if err != nil {
		return Reply{}, fmt.Errorf("log memory: %w", err)
	}

	s.log.InfoContext(ctx, "memory logged",
		slog.String("guild_id", tenant.String()),
		slog.Int64("memory_id", id),
		slog.Bool("has_image", imageURL != nil),
	)

	return Reply{Text: "Memory logged to the scrapbook."}, nil
}
