//go:build !windows

package hotkey

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalHook turns SIGUSR1 into EventToggle and SIGUSR2 into EventClose, so
// a desktop hotkey daemon can drive the reader with kill -USR1.
type SignalHook struct{}

func (SignalHook) Run(ctx context.Context, emit func(Event)) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGUSR1, syscall.SIGUSR2)
	defer signal.Stop(sig)

	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-sig:
			switch s {
			case syscall.SIGUSR1:
				emit(EventToggle)
			case syscall.SIGUSR2:
				emit(EventClose)
			}
		}
	}
}
