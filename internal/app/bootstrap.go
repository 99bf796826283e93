package app

import (
	"context"
	"sync"
)

// BootstrapState is the lifecycle of the one-time database bootstrap.
type BootstrapState int

const (
	BootstrapUninitialized BootstrapState = iota
	BootstrapInitializing
	BootstrapReady
	BootstrapFailed
)

func (s BootstrapState) String() string {
	switch s {
	case BootstrapUninitialized:
		return "uninitialized"
	case BootstrapInitializing:
		return "initializing"
	case BootstrapReady:
		return "ready"
	case BootstrapFailed:
		return "failed"
	}
	return "unknown"
}

// Bootstrapper runs a process-lifetime initialization exactly once per
// success. A failed attempt moves to Failed and the next Ensure call
// retries instead of wedging, so a transient outage at cold start does
// not require a restart. Concurrent callers during an in-flight attempt
// wait for its outcome.
type Bootstrapper struct {
	initFn func(ctx context.Context) error

	mu      sync.Mutex
	state   BootstrapState
	lastErr error
	done    chan struct{}
}

func NewBootstrapper(initFn func(ctx context.Context) error) *Bootstrapper {
	return &Bootstrapper{initFn: initFn}
}

// State returns the current bootstrap state.
func (b *Bootstrapper) State() BootstrapState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Ensure makes sure the bootstrap has run. It only performs work from
// Uninitialized or Failed; otherwise it returns the cached outcome,
// waiting if an attempt is already in flight.
func (b *Bootstrapper) Ensure(ctx context.Context) error {
	b.mu.Lock()
	switch b.state {
	case BootstrapReady:
		b.mu.Unlock()
		return nil
	case BootstrapInitializing:
		done := b.done
		b.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		b.mu.Lock()
		err := b.lastErr
		b.mu.Unlock()
		return err
	}

	// Uninitialized or Failed: this caller runs the attempt.
	b.state = BootstrapInitializing
	b.done = make(chan struct{})
	done := b.done
	b.mu.Unlock()

	err := b.initFn(ctx)

	b.mu.Lock()
	if err != nil {
		b.state = BootstrapFailed
		b.lastErr = err
	} else {
		b.state = BootstrapReady
		b.lastErr = nil
	}
	close(done)
	b.mu.Unlock()
	return err
}
