package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kavia-common/tic-tac-toe-web-game-2651-2660/internal/domain"
)

// Snapshot is a copy of the controller state handed to readers. Version
// increases by one per accepted mutation; Session identifies this process run
// and survives resets.
type Snapshot struct {
	Session string
	Game    domain.Game
	Version uint64
	Started time.Time
	Updated time.Time
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Controller owns the single in-memory game. All mutation goes through it,
// and each accepted mutation is rendered once and fanned out to subscribers.
type Controller struct {
	mu      sync.Mutex
	game    domain.Game
	session string
	started time.Time
	updated time.Time
	version uint64
	subs    map[*subscriber]struct{}
	render  func(Snapshot) []byte
}

// NewController creates the controller with an empty board and X to move.
// The renderer produces broadcast payloads; nil disables broadcasting.
func NewController(renderer func(Snapshot) []byte) *Controller {
	if renderer == nil {
		renderer = func(Snapshot) []byte { return nil }
	}
	now := time.Now()
	return &Controller{
		game:    domain.New(),
		session: uuid.NewString(),
		started: now,
		updated: now,
		subs:    make(map[*subscriber]struct{}),
		render:  renderer,
	}
}

// SetRenderer replaces the broadcast renderer function.
func (c *Controller) SetRenderer(renderer func(Snapshot) []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if renderer == nil {
		renderer = func(Snapshot) []byte { return nil }
	}
	c.render = renderer
}

// Session returns the process session ID.
func (c *Controller) Session() string {
	return c.session
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Session: c.session,
		Game:    c.game,
		Version: c.version,
		Started: c.started,
		Updated: c.updated,
	}
}

// Move applies a move at cell and returns the resulting state. Occupied cells
// and finished games leave the state untouched; only an out-of-range index is
// an error. Accepted moves are broadcast to subscribers.
func (c *Controller) Move(cell int) (Snapshot, error) {
	c.mu.Lock()
	before := c.game
	if err := c.game.Play(cell); err != nil {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, err
	}
	if c.game == before {
		// Ignored click; nothing to version or broadcast.
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, nil
	}
	c.version++
	c.updated = time.Now()
	snap := c.snapshotLocked()
	c.broadcastLocked(c.render(snap))
	c.mu.Unlock()

	log.Info().
		Str("session", snap.Session).
		Int("cell", cell).
		Str("status", snap.Game.Status()).
		Msg("Move applied")

	return snap, nil
}

// Reset restores the initial game state unconditionally and broadcasts it.
func (c *Controller) Reset() Snapshot {
	c.mu.Lock()
	c.game.Reset()
	c.version++
	c.updated = time.Now()
	snap := c.snapshotLocked()
	c.broadcastLocked(c.render(snap))
	c.mu.Unlock()

	log.Info().Str("session", snap.Session).Msg("Game reset")

	return snap
}

// broadcastLocked fans a payload out; subscribers that cannot keep up are
// closed and removed rather than blocking the caller. Channel sends and
// closes both happen under c.mu, so a send can never race an unsubscribe
// closing the same channel. The sends are buffered and non-blocking, so
// holding the mutex here is safe.
func (c *Controller) broadcastLocked(payload []byte) {
	for sub := range c.subs {
		select {
		case sub.ch <- payload:
		default:
			sub.close()
			delete(c.subs, sub)
		}
	}
}

// Subscribe registers a listener for rendered state updates. The returned
// channel closes when the context is done or the unsubscribe func is called.
func (c *Controller) Subscribe(ctx context.Context) (<-chan []byte, func()) {
	c.mu.Lock()
	sub := &subscriber{ch: make(chan []byte, 1)}
	c.subs[sub] = struct{}{}
	c.mu.Unlock()

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			// Close under the mutex: broadcastLocked may be mid-send
			// on this channel otherwise.
			c.mu.Lock()
			delete(c.subs, sub)
			sub.close()
			c.mu.Unlock()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}
