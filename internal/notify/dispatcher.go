package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Dispatcher runs deliveries in the background, detached from the request
// that produced them. In-flight deliveries are tracked so shutdown can await
// them instead of abandoning untracked goroutines.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

// NewDispatcher wraps a notifier with background scheduling. timeout bounds
// each delivery; zero selects a 30-second default.
func NewDispatcher(n Notifier, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{notifier: n, timeout: timeout}
}

// Dispatch schedules one delivery and returns immediately. The delivery may
// complete after the HTTP response has been flushed; its failure is logged
// and swallowed.
func (d *Dispatcher) Dispatch(p Payload) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		d.deliver(ctx, p)
	}()
}

// Deliver runs one delivery inline, for the blocking notification strategy.
// The failure policy is the same: logged, never propagated.
func (d *Dispatcher) Deliver(ctx context.Context, p Payload) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	d.deliver(ctx, p)
}

func (d *Dispatcher) deliver(ctx context.Context, p Payload) {
	if err := d.notifier.Notify(ctx, p); err != nil {
		slog.Error("notification delivery failed", "error", err, "email", p.Email)
		return
	}
	slog.Info("notification delivered", "email", p.Email)
}

// Shutdown waits for in-flight deliveries to finish or for ctx to expire.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
