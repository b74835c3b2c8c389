// Package command implements the chat commands of the companion bot. Each
// command resolves the guild from the context, validates its input, calls
// exactly one store operation and renders a Reply.
package command

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/internal/retrieval"
	"github.com/heartmarshall/ustwo-backend/pkg/ctxutil"
)

type memoryRepo interface {
	Create(ctx context.Context, tenant domain.TenantID, content, imageURL *string) (int64, error)
	PickRandom(ctx context.Context, tenant domain.TenantID) (domain.Memory, error)
}

type dateIdeaRepo interface {
	Create(ctx context.Context, tenant domain.TenantID, idea, category string) (int64, error)
	PickRandom(ctx context.Context, tenant domain.TenantID, filter retrieval.CategoryFilter) (string, error)
}

type milestoneRepo interface {
	Create(ctx context.Context, tenant domain.TenantID, eventName, eventDate string) (int64, error)
	List(ctx context.Context, tenant domain.TenantID) ([]domain.Milestone, error)
}

// Service executes chat commands.
type Service struct {
	memories   memoryRepo
	ideas      dateIdeaRepo
	milestones milestoneRepo
	publicURL  string
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new command service. publicURL is the externally
// reachable base of the list views, without a trailing slash.
func NewService(
	log *slog.Logger,
	memories memoryRepo,
	ideas dateIdeaRepo,
	milestones milestoneRepo,
	publicURL string,
) *Service {
	return &Service{
		memories:   memories,
		ideas:      ideas,
		milestones: milestones,
		publicURL:  strings.TrimRight(publicURL, "/"),
		now:        time.Now,
		log:        log.With("service", "command"),
	}
}

func tenantFromCtx(ctx context.Context) (domain.TenantID, error) {
	tenant, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrTenantRequired
	}
	return tenant, nil
}
