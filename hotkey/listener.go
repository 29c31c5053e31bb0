package hotkey

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Event int

const (
	EventToggle Event = iota
	EventClose
)

func (e Event) String() string {
	switch e {
	case EventToggle:
		return "toggle"
	case EventClose:
		return "close"
	}
	return "unknown"
}

// eventBuffer bounds how many events can wait for the UI.
const eventBuffer = 8

// Hook is an OS-level key source. Run blocks until ctx is cancelled and
// calls emit for every hotkey it sees, in order.
type Hook interface {
	Run(ctx context.Context, emit func(Event)) error
}

// HookFunc adapts a function to Hook.
type HookFunc func(ctx context.Context, emit func(Event)) error

func (f HookFunc) Run(ctx context.Context, emit func(Event)) error { return f(ctx, emit) }

// Listener hosts one Hook on its own goroutine. The hook never touches
// reader state; it only feeds the Events channel, which has one consumer.
type Listener struct {
	hook   Hook
	events chan Event
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewListener(hook Hook) *Listener {
	return &Listener{
		hook:   hook,
		events: make(chan Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// Start launches the hook. The Events channel is closed once the hook
// returns.
func (l *Listener) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	go func() {
		defer close(l.done)
		defer close(l.events)
		emit := func(e Event) {
			select {
			case l.events <- e:
			case <-ctx.Done():
			}
		}
		if err := l.hook.Run(ctx, emit); err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("hotkey listener stopped")
		}
	}()
}

func (l *Listener) Events() <-chan Event { return l.events }

// Stop asks the hook to finish. It does not wait; use Done for that.
func (l *Listener) Stop() {
	l.once.Do(func() {
		if l.cancel != nil {
			l.cancel()
		}
	})
}

// Done is closed after the hook has returned.
func (l *Listener) Done() <-chan struct{} { return l.done }
