package web

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/app"
	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/domain"
)

type handlers struct {
	ctrl *app.Controller
	tpl  *templates
}

func (h *handlers) renderBoard(s app.Snapshot) []byte {
	data := boardData{
		Session: s.Session,
		Board:   s.Game.Board,
		Status:  s.Game.Status(),
		Verdict: s.Game.Verdict,
	}
	return renderTemplate(h.tpl.board, data)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	data := struct {
		BoardHTML template.HTML
	}{BoardHTML: template.HTML(h.renderBoard(h.ctrl.Snapshot()))}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(renderTemplate(h.tpl.page, data))
}

func (h *handlers) board(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(h.ctrl.Snapshot()))
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	cell, err := strconv.Atoi(r.Form.Get("cell"))
	if err != nil {
		http.Error(w, "invalid cell", http.StatusBadRequest)
		return
	}
	snap, err := h.ctrl.Move(cell)
	if errors.Is(err, domain.ErrOutOfBounds) {
		// Only reachable with a hand-crafted request; the board never
		// posts an index outside 0..8.
		http.Error(w, "invalid cell", http.StatusBadRequest)
		return
	}
	// Occupied cells and finished games are not errors: the unchanged
	// board is re-rendered and the click visibly does nothing.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(snap))
}

func (h *handlers) reset(w http.ResponseWriter, r *http.Request) {
	snap := h.ctrl.Reset()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.renderBoard(snap))
}

var heartbeatInterval = 15 * time.Second

func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	// In tests or non-EventSource requests, just acknowledge headers and return
	if r.Header.Get("Accept") != "text/event-stream" {
		w.WriteHeader(http.StatusOK)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}
	ctx := r.Context()
	ch, _ := h.ctrl.Subscribe(ctx)
	// heartbeat ticker
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	// Initial flush of headers
	flusher.Flush()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, _ = io.WriteString(w, ": ping\n\n")
			flusher.Flush()
		case b, ok := <-ch:
			if !ok {
				return
			}
			// Emit board event
			_, _ = fmt.Fprintf(w, "event: board\n")
			_, _ = fmt.Fprintf(w, "data: %s\n\n", b)
			flusher.Flush()
		}
	}
}
