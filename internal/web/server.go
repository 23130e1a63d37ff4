package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/app"
)

// NewServer wires routes and returns an http.Handler. It also installs the
// board renderer on the controller so SSE subscribers receive ready-to-swap
// fragments.
func NewServer(c *app.Controller) http.Handler {
	r := chi.NewRouter()
	h := &handlers{ctrl: c, tpl: loadTemplates()}
	c.SetRenderer(h.renderBoard)
	r.Get("/", h.index)
	r.Get("/board", h.board)
	r.Post("/move", h.move)
	r.Post("/reset", h.reset)
	r.Get("/events", h.events)
	return r
}
