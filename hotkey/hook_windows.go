//go:build windows

package hotkey

import "context"

// SignalHook has no signal source on Windows; it waits for cancellation so
// the listener lifecycle stays the same.
type SignalHook struct{}

func (SignalHook) Run(ctx context.Context, emit func(Event)) error {
	<-ctx.Done()
	return nil
}
