package command

import (
	"context"
	"fmt"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// Command names as registered with the chat platform.
const (
	NameLog          = "log"
	NameRemember     = "remember"
	NameDate         = "date"
	NamePick         = "pick"
	NameMilestone    = "milestone"
	NameDays         = "days"
	NameMenu         = "menu"
	NameViewDates    = "view_dates"
	NameViewMemories = "view_memories"
)

// Options are the raw slash-command options. Each command reads only the
// ones it declares.
type Options struct {
	Memory   *string
	Image    *string
	Category *string
	Idea     *string
	Date     *string
	Name     *string
}

// Execute dispatches a command by name. Unknown names yield domain.ErrNotFound.
func (s *Service) Execute(ctx context.Context, name string, opts Options) (Reply, error) {
	switch name {
	case NameLog:
		return s.LogMemory(ctx, LogMemoryInput{Content: opts.Memory, ImageURL: opts.Image})
	case NameRemember:
		return s.Remember(ctx)
	case NameDate:
		return s.AddDateIdea(ctx, AddDateIdeaInput{Category: deref(opts.Category), Idea: deref(opts.Idea)})
	case NamePick:
		return s.PickDateIdea(ctx, PickDateIdeaInput{Category: opts.Category})
	case NameMilestone:
		return s.SetMilestone(ctx, SetMilestoneInput{Date: deref(opts.Date), Name: deref(opts.Name)})
	case NameDays:
		return s.Days(ctx)
	case NameMenu:
		return s.Menu(), nil
	case NameViewDates:
		return s.ViewDates(ctx)
	case NameViewMemories:
		return s.ViewMemories(ctx)
	default:
		return Reply{}, fmt.Errorf("command %q: %w", name, domain.ErrNotFound)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
