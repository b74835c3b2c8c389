package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// Remember recalls one random memory of the guild.
func (s *Service) Remember(ctx context.Context) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}

	m, err := s.memories.PickRandom(ctx, tenant)
	if errors.Is(err, domain.ErrNotFound) {
		return Reply{Text: "No memories found."}, nil
	}
	if err != nil {
		return Reply{}, fmt.Errorf("remember: %w", err)
	}

	saved := "Unknown Date"
	if !m.CreatedAt.IsZero() {
		saved = m.CreatedAt.Format(domain.DateLayout)
	}

	embed := &Embed{
		Title:       "Memory Lane",
		Description: m.DisplayText(),
		Color:       colorMemoryLane,
		Footer:      "Saved on " + saved,
	}
	if m.HasImage() {
		embed.ImageURL = *m.ImageURL
	}

	return Reply{Embed: embed}, nil
}
