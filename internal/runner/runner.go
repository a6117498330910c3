// Package runner drives a game session from a single goroutine: a fixed-rate
// ticker and a queue of player commands feed one loop, so session mutations
// never interleave.
package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/textris/internal/board"
	"github.com/vovakirdan/textris/internal/session"
)

// Command is a player request processed by the runner loop.
type Command int

const (
	CmdLeft Command = iota
	CmdRight
	CmdDown
	CmdDrop
	CmdReset
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdDown:
		return "down"
	case CmdDrop:
		return "drop"
	case CmdReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Config holds runner settings.
type Config struct {
	TickInterval   time.Duration // Gravity cadence
	QueueSize      int           // Buffered commands before new ones are dropped
	StopOnGameOver bool          // Return from Run once the game ends
	MaxTicks       uint64        // Return from Run after this many ticks; 0 for no limit
}

// DefaultConfig returns the reference cadence of one fall step every 500ms.
func DefaultConfig() Config {
	return Config{
		TickInterval:   500 * time.Millisecond,
		QueueSize:      64,
		StopOnGameOver: true,
	}
}

// Runner owns a session and serializes ticks and commands.
type Runner struct {
	session  *session.GameSession
	cfg      Config
	commands chan Command
	done     chan struct{}
	doneOnce sync.Once
	ticks    atomic.Uint64
}

// New creates a runner for s. Zero config fields take their defaults.
func New(s *session.GameSession, cfg Config) *Runner {
	def := DefaultConfig()
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = def.QueueSize
	}
	return &Runner{
		session:  s,
		cfg:      cfg,
		commands: make(chan Command, cfg.QueueSize),
		done:     make(chan struct{}),
	}
}

// Session returns the driven session.
func (r *Runner) Session() *session.GameSession {
	return r.session
}

// Send queues a command. Non-blocking; reports false when the queue is full
// or the runner has stopped.
func (r *Runner) Send(cmd Command) bool {
	select {
	case <-r.done:
		return false
	default:
	}

	select {
	case r.commands <- cmd:
		return true
	default:
		return false
	}
}

// Ticks returns the number of ticks processed.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

// Done returns a channel closed when Run returns.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Stop ends Run. Safe to call multiple times.
func (r *Runner) Stop() {
	r.doneOnce.Do(func() {
		close(r.done)
	})
}

// Run processes ticks and commands until ctx is cancelled, Stop is called,
// the tick limit is reached or (with StopOnGameOver) the game ends. Returns ctx.Err() on cancellation.
func (r *Runner) Run(ctx context.Context) error {
	defer r.Stop()

	ticker := time.NewTicker(r.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.drain()
			r.session.Tick()
			if n := r.ticks.Add(1); r.cfg.MaxTicks > 0 && n >= r.cfg.MaxTicks {
				return nil
			}

		case cmd := <-r.commands:
			Apply(r.session, cmd)

		case <-ctx.Done():
			return ctx.Err()

		case <-r.done:
			return nil
		}

		if r.cfg.StopOnGameOver && r.session.IsGameOver() {
			return nil
		}
	}
}

// drain applies every queued command without blocking.
func (r *Runner) drain() {
	for {
		select {
		case cmd := <-r.commands:
			Apply(r.session, cmd)
		default:
			return
		}
	}
}

// Apply performs cmd on s.
func Apply(s *session.GameSession, cmd Command) {
	switch cmd {
	case CmdLeft:
		s.MoveCurrent(board.Left)
	case CmdRight:
		s.MoveCurrent(board.Right)
	case CmdDown:
		s.MoveCurrent(board.Down)
	case CmdDrop:
		s.DropToBottom()
	case CmdReset:
		s.Reset()
	}
}
