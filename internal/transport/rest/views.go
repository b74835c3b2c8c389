package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/internal/service/countdown"
	"github.com/heartmarshall/ustwo-backend/pkg/ctxutil"
)

type memoryLister interface {
	List(ctx context.Context, tenant domain.TenantID) ([]domain.Memory, error)
}

type dateIdeaLister interface {
	List(ctx context.Context, tenant domain.TenantID) ([]domain.DateIdea, error)
}

type milestoneLister interface {
	List(ctx context.Context, tenant domain.TenantID) ([]domain.Milestone, error)
}

// ViewHandler serves the read-only per-guild list views.
type ViewHandler struct {
	memories   memoryLister
	ideas      dateIdeaLister
	milestones milestoneLister
	now        func() time.Time
	log        *slog.Logger
}

// NewViewHandler creates a ViewHandler.
func NewViewHandler(log *slog.Logger, memories memoryLister, ideas dateIdeaLister, milestones milestoneLister) *ViewHandler {
	return &ViewHandler{
		memories:   memories,
		ideas:      ideas,
		milestones: milestones,
		now:        time.Now,
		log:        log.With("handler", "views"),
	}
}

type dateIdeaResponse struct {
	ID        int64  `json:"id"`
	Category  string `json:"category"`
	Idea      string `json:"idea"`
	Completed bool   `json:"completed"`
	Status    string `json:"status"`
}

type memoryResponse struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	DateAdded *string `json:"dateAdded"`
}

type milestoneResponse struct {
	ID        int64  `json:"id"`
	EventName string `json:"eventName"`
	EventDate string `json:"eventDate"`
	DaysUntil int    `json:"daysUntil"`
	Countdown string `json:"countdown"`
}

type dateIdeasPage struct {
	GuildID   string             `json:"guildId"`
	DateIdeas []dateIdeaResponse `json:"dateIdeas"`
}

type memoriesPage struct {
	GuildID  string           `json:"guildId"`
	Memories []memoryResponse `json:"memories"`
}

type milestonesPage struct {
	GuildID    string              `json:"guildId"`
	Milestones []milestoneResponse `json:"milestones"`
}

// DateIdeas lists every date idea of the guild, ordered by category.
func (h *ViewHandler) DateIdeas(w http.ResponseWriter, r *http.Request) {
	tenant, ok := ctxutil.TenantIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrTenantRequired)
		return
	}

	ideas, err := h.ideas.List(r.Context(), tenant)
	if err != nil {
		handleError(h.log, w, r, fmt.Errorf("list date ideas: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, dateIdeasPage{
		GuildID: tenant.String(),
		DateIdeas: lo.Map(ideas, func(d domain.DateIdea, _ int) dateIdeaResponse {
			return dateIdeaResponse{
				ID:        d.ID,
				Category:  d.Category,
				Idea:      d.Idea,
				Completed: d.Completed,
				Status:    d.StatusLabel(),
			}
		}),
	})
}

// Memories lists every memory of the guild, most recent first.
func (h *ViewHandler) Memories(w http.ResponseWriter, r *http.Request) {
	tenant, ok := ctxutil.TenantIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrTenantRequired)
		return
	}

	memories, err := h.memories.List(r.Context(), tenant)
	if err != nil {
		handleError(h.log, w, r, fmt.Errorf("list memories: %w", err))
		return
	}

	writeJSON(w, http.StatusOK, memoriesPage{
		GuildID: tenant.String(),
		Memories: lo.Map(memories, func(m domain.Memory, _ int) memoryResponse {
			resp := memoryResponse{
				ID:       m.ID,
				Text:     m.DisplayText(),
				Content:  m.Content,
				ImageURL: m.ImageURL,
			}
			if !m.CreatedAt.IsZero() {
				resp.DateAdded = lo.ToPtr(m.CreatedAt.Format(domain.DateLayout))
			}
			return resp
		}),
	})
}

// Milestones lists every milestone of the guild with its countdown.
func (h *ViewHandler) Milestones(w http.ResponseWriter, r *http.Request) {
	tenant, ok := ctxutil.TenantIDFromCtx(r.Context())
	if !ok {
		handleError(h.log, w, r, domain.ErrTenantRequired)
		return
	}

	milestones, err := h.milestones.List(r.Context(), tenant)
	if err != nil {
		handleError(h.log, w, r, fmt.Errorf("list milestones: %w", err))
		return
	}

	countdowns, err := countdown.ForMilestones(milestones, h.now())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, milestonesPage{
		GuildID: tenant.String(),
		Milestones: lo.Map(countdowns, func(c domain.Countdown, i int) milestoneResponse {
			return milestoneResponse{
				ID:        milestones[i].ID,
				EventName: c.EventName,
				EventDate: c.EventDate,
				DaysUntil: c.Days,
				Countdown: countdown.Phrase(c.Days),
			}
		}),
	})
}
