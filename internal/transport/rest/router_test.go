package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/ustwo-backend/internal/config"
	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/internal/service/command"
	"github.com/heartmarshall/ustwo-backend/internal/transport/middleware"
	"github.com/heartmarshall/ustwo-backend/pkg/ctxutil"
)

func newTestRouter(t *testing.T, ideas dateIdeaListerFunc, svc commandServiceFunc) http.Handler {
	t.Helper()
	log := slog.Default()
	return NewRouter(log, config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST"}, Handlers{
		Health:   NewHealthHandler(&dbPingerMock{}, "test"),
		Views:    NewViewHandler(log, nil, ideas, nil),
		Commands: NewCommandHandler(svc, log),
	})
}

func TestRouter_Liveness(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, nil)

	for _, path := range []string{"/", "/live", "/ready", "/health"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, rec.Code)
		}
		if rec.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("%s: expected request id header", path)
		}
	}
}

func TestRouter_GuildScopedView(t *testing.T) {
	t.Parallel()

	var gotTenant domain.TenantID
	router := newTestRouter(t, func(_ context.Context, tenant domain.TenantID) ([]domain.DateIdea, error) {
		gotTenant = tenant
		return []domain.DateIdea{{ID: 1, Category: "Food", Idea: "pho"}}, nil
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guilds/1098765432109876543/dates", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotTenant != 1098765432109876543 {
		t.Errorf("tenant: got %d", gotTenant)
	}

	var page dateIdeasPage
	if err := json.NewDecoder(rec.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.GuildID != "1098765432109876543" {
		t.Errorf("guildId: got %q", page.GuildID)
	}
}

func TestRouter_InvalidGuild(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, func(context.Context, domain.TenantID) ([]domain.DateIdea, error) {
		t.Error("store must not be reached with an invalid guild id")
		return nil, nil
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guilds/not-a-guild/dates", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("expected the JSON error shape: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestRouter_CommandCarriesTenant(t *testing.T) {
	t.Parallel()

	var gotTenant domain.TenantID
	var gotName string
	router := newTestRouter(t, nil, func(ctx context.Context, name string, _ command.Options) (command.Reply, error) {
		gotTenant, _ = ctxutil.TenantIDFromCtx(ctx)
		gotName = name
		return command.Reply{Text: "No ideas found."}, nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/guilds/42/commands/pick", strings.NewReader(`{"category":"Food"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if gotTenant != 42 || gotName != "pick" {
		t.Errorf("got tenant %d, name %q", gotTenant, gotName)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guilds/42/secrets", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestRouter_CommandLimitOnlyGuardsCommands(t *testing.T) {
	t.Parallel()

	log := slog.Default()
	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	router := NewRouter(log, config.CORSConfig{AllowedOrigins: "*"}, Handlers{
		Health: NewHealthHandler(&dbPingerMock{}, "test"),
		Views: NewViewHandler(log, nil, dateIdeaListerFunc(func(context.Context, domain.TenantID) ([]domain.DateIdea, error) {
			return nil, nil
		}), nil),
		Commands:     NewCommandHandler(commandServiceFunc(nil), log),
		CommandLimit: deny,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/guilds/42/commands/menu", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("command: expected status 429, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guilds/42/dates", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("view: expected status 200, got %d", rec.Code)
	}
}
