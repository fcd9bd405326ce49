package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameManager interface {
	NewSession(ctx context.Context, mode entity.Mode, aiMark entity.Mark, names map[entity.Mark]string) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, mark entity.Mark, cell int) (*entity.Session, error)
	NewRound(ctx context.Context, id string) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// Defaults fill in what a create request leaves out.
type Defaults struct {
	Mode   entity.Mode
	AIMark entity.Mark
}

// NewRouter wires the session routes and returns an http.Handler.
func NewRouter(logger *slog.Logger, manager gameManager, defaults Defaults) http.Handler {
	h := &handlers{
		logger:   logger.With("component", "rest"),
		manager:  manager,
		defaults: defaults,
	}

	r := chi.NewRouter()
	r.Get("/ping", pingHandler)
	r.Post("/sessions", h.createSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.getSession)
		r.Delete("/", h.deleteSession)
		r.Post("/moves", h.makeTurn)
		r.Post("/rounds", h.newRound)
		r.Post("/restart", h.restart)
	})

	return r
}
