package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/heartmarshall/ustwo-backend/internal/service/command"
)

// CommandNameParam is the chi URL parameter carrying the command name.
const CommandNameParam = "name"

const maxCommandBody = 64 << 10

type commandService interface {
	Execute(ctx context.Context, name string, opts command.Options) (command.Reply, error)
}

// CommandHandler runs chat commands on behalf of the chat gateway.
type CommandHandler struct {
	svc commandService
	log *slog.Logger
}

// NewCommandHandler creates a CommandHandler.
func NewCommandHandler(svc commandService, log *slog.Logger) *CommandHandler {
	return &CommandHandler{svc: svc, log: log.With("handler", "command")}
}

type commandRequest struct {
	Memory   *string `json:"memory"`
	Image    *string `json:"image"`
	Category *string `json:"category"`
	Idea     *string `json:"idea"`
	Date     *string `json:"date"`
	Name     *string `json:"name"`
}

type embedFieldResponse struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedResponse struct {
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Color       int                  `json:"color"`
	Fields      []embedFieldResponse `json:"fields,omitempty"`
	Footer      string               `json:"footer,omitempty"`
	ImageURL    string               `json:"imageUrl,omitempty"`
}

type replyResponse struct {
	Text      string         `json:"text,omitempty"`
	Embed     *embedResponse `json:"embed,omitempty"`
	Ephemeral bool           `json:"ephemeral"`
}

type commandResponse struct {
	Reply replyResponse `json:"reply"`
}

type commandErrorResponse struct {
	Error string        `json:"error"`
	Reply replyResponse `json:"reply"`
}

// Execute handles POST /guilds/{guildID}/commands/{name}. The body holds the
// command options and may be empty. Inputs the user must fix come back as
// 400 with the ephemeral reply to show them.
func (h *CommandHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxCommandBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	name := chi.URLParam(r, CommandNameParam)
	reply, err := h.svc.Execute(r.Context(), name, command.Options{
		Memory:   req.Memory,
		Image:    req.Image,
		Category: req.Category,
		Idea:     req.Idea,
		Date:     req.Date,
		Name:     req.Name,
	})
	if err != nil {
		if rejection, ok := command.Rejection(err); ok {
			writeJSON(w, http.StatusBadRequest, commandErrorResponse{
				Error: err.Error(),
				Reply: toReplyResponse(rejection),
			})
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commandResponse{Reply: toReplyResponse(reply)})
}

func toReplyResponse(r command.Reply) replyResponse {
	resp := replyResponse{Text: r.Text, Ephemeral: r.Ephemeral}
	if r.Embed != nil {
		resp.Embed = &embedResponse{
			Title:       r.Embed.Title,
			Description: r.Embed.Description,
			Color:       r.Embed.Color,
			Footer:      r.Embed.Footer,
			ImageURL:    r.Embed.ImageURL,
			Fields: lo.Map(r.Embed.Fields, func(f command.EmbedField, _ int) embedFieldResponse {
				return embedFieldResponse{Name: f.Name, Value: f.Value, Inline: f.Inline}
			}),
		}
	}
	return resp
}
