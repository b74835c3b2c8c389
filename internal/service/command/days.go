package command

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ustwo-backend/internal/service/countdown"
)

// Days lists every milestone of the guild with its countdown.
// A stored date that no longer parses is reported on its own line instead
// of failing the whole reply.
func (s *Service) Days(ctx context.Context) (Reply, error) {
	tenant, err := tenantFromCtx(ctx)
	if err != nil {
		return Reply{}, err
	}

	milestones, err := s.milestones.List(ctx, tenant)
	if err != nil {
		return Reply{}, fmt.Errorf("days: %w", err)
	}
	if len(milestones) == 0 {
		return Reply{Text: "No milestones set yet."}, nil
	}

	now := s.now()

	var b strings.Builder
	b.WriteString("**Important Dates:**\n")
	for _, m := range milestones {
		days, err := countdown.DaysUntil(m.EventDate, now)
		if err != nil {
			s.log.WarnContext(ctx, "unreadable milestone date",
				slog.String("guild_id", tenant.String()),
				slog.Int64("milestone_id", m.ID),
				slog.String("error", err.Error()),
			)
			fmt.Fprintf(&b, "• **%s**: unreadable date %q\n", m.EventName, m.EventDate)
			continue
		}
		fmt.Fprintf(&b, "• **%s**: %s\n", m.EventName, countdown.Phrase(days))
	}

	return Reply{Text: b.String()}, nil
}
