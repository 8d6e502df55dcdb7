// Package shutdown runs cleanup callbacks exactly once, either when the
// program finishes normally or when it receives a termination signal.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
)

// Signals are the termination signals the game saves on.
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// Hook collects cleanup callbacks and runs them once.
type Hook struct {
	mu     sync.Mutex
	fns    []func()
	once   sync.Once
	logger *log.Logger
}

// New creates an empty hook. A nil logger disables logging.
func New(logger *log.Logger) *Hook {
	return &Hook{logger: logger}
}

// Register adds a callback. Callbacks run in reverse registration order.
func (h *Hook) Register(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fns = append(h.fns, fn)
}

// Run invokes all callbacks. Only the first call has an effect.
func (h *Hook) Run() {
	h.once.Do(func() {
		h.mu.Lock()
		fns := h.fns
		h.fns = nil
		h.mu.Unlock()

		for i := len(fns) - 1; i >= 0; i-- {
			fns[i]()
		}
	})
}

// Watch runs the hook when one of sigs arrives (Signals if none are given),
// then calls onSignal so the caller can stop its main loop. The returned
// function stops watching; it does not run the hook.
func (h *Hook) Watch(ctx context.Context, onSignal func(os.Signal), sigs ...os.Signal) (stop func()) {
	if len(sigs) == 0 {
		sigs = Signals
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	ctx, cancel := context.WithCancel(ctx)
	done := h.watch(ctx, ch, onSignal)

	return func() {
		signal.Stop(ch)
		cancel()
		<-done
	}
}

// watch waits on ch until ctx ends. The returned channel closes when the
// watcher goroutine exits.
func (h *Hook) watch(ctx context.Context, ch <-chan os.Signal, onSignal func(os.Signal)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
		case sig := <-ch:
			if h.logger != nil {
				h.logger.Info("received signal, shutting down", "signal", sig.String())
			}
			h.Run()
			if onSignal != nil {
				onSignal(sig)
			}
		}
	}()
	return done
}
