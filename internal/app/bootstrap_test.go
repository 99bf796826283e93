package app_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"pokequiz-service/internal/app"
)

func TestBootstrapRunsOnce(t *testing.T) {
	var calls int32
	b := app.NewBootstrapper(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := b.Ensure(ctx); err != nil {
			t.Fatalf("ensure: %v", err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected one init run, got %d", got)
	}
	if b.State() != app.BootstrapReady {
		t.Fatalf("expected ready, got %s", b.State())
	}
}

func TestBootstrapRetriesAfterFailure(t *testing.T) {
	var calls int32
	b := app.NewBootstrapper(func(ctx context.Context) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			return errors.New("connection refused")
		}
		return nil
	})
	ctx := context.Background()

	if err := b.Ensure(ctx); err == nil {
		t.Fatal("expected first attempt to fail")
	}
	if b.State() != app.BootstrapFailed {
		t.Fatalf("expected failed, got %s", b.State())
	}

	if err := b.Ensure(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if b.State() != app.BootstrapReady {
		t.Fatalf("expected ready after retry, got %s", b.State())
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected two init runs, got %d", got)
	}
}

func TestBootstrapConcurrentCallersShareOneAttempt(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	b := app.NewBootstrapper(func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		<-release
		return nil
	})
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = b.Ensure(ctx)
		}(i)
	}
	close(release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single shared attempt, got %d", got)
	}
}

func TestBootstrapWaiterHonorsContext(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	b := app.NewBootstrapper(func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	go b.Ensure(context.Background())
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Ensure(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	close(release)
}
