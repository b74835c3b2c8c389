package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SetMilestone records a dated milestone for the guild.
func (s *Service) SetMilestone(ctx context.Context, input SetMilestoneInput) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}

	if err := input.Validate(); err != nil {
		return Reply{}, err
	}

	name := strings.TrimSpace(input.Name)

	id, err := s.milestones.Create(ctx, tenant, name, input.Date)
	if err != nil {
		return Reply{}, fmt.Errorf("set milestone: %w", err)
	}

	s.log.InfoContext(ctx, "milestone set",
		slog.String("guild_id", tenant.String()),
		slog.Int64("milestone_id", id),
		slog.String("event_date", input.Date),
	)

	return Reply{Text: fmt.Sprintf("Milestone '%s' set for %s.", name, input.Date)}, nil
}
