package runner

import (
	"sync"

	"github.com/vovakirdan/textris/internal/session"
)

// ChannelObserver delivers session events on a buffered channel. When the
// buffer is full the oldest event is dropped so the session never blocks.
type ChannelObserver struct {
	events    chan session.Event
	done      chan struct{}
	doneOnce  sync.Once
	dropped   int
	droppedMu sync.Mutex
}

// NewChannelObserver creates an observer buffering up to size events.
func NewChannelObserver(size int) *ChannelObserver {
	if size < 1 {
		size = 64
	}
	return &ChannelObserver{
		events: make(chan session.Event, size),
		done:   make(chan struct{}),
	}
}

// Notify implements session.Observer.
func (o *ChannelObserver) Notify(evt session.Event) {
	select {
	case <-o.done:
		return
	default:
	}

	select {
	case o.events <- evt:
	default:
		select {
		case <-o.events:
			o.droppedMu.Lock()
			o.dropped++
			o.droppedMu.Unlock()
		default:
		}
		select {
		case o.events <- evt:
		default:
		}
	}
}

// Events returns the channel to read events from.
func (o *ChannelObserver) Events() <-chan session.Event {
	return o.events
}

// Dropped returns how many events were discarded because the buffer was full.
func (o *ChannelObserver) Dropped() int {
	o.droppedMu.Lock()
	defer o.droppedMu.Unlock()
	return o.dropped
}

// Close stops delivery. Safe to call multiple times.
func (o *ChannelObserver) Close() {
	o.doneOnce.Do(func() {
		close(o.done)
	})
}
