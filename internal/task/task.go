// Package task runs delayed work behind a handle that can be abandoned.
//
// An abandoned handle stops waiting on its delay and discards whatever the
// work produces; nothing is ever delivered to a caller that has gone away.
package task

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrAbandoned = errors.New("task abandoned")

type Handle[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc

	mu        sync.Mutex
	abandoned bool
	result    T
	err       error
}

// Start waits delay, then runs fn. The context passed to fn is cancelled when
// parent is done or the handle is abandoned.
func Start[T any](parent context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) *Handle[T] {
	ctx, cancel := context.WithCancel(parent)
	h := &Handle[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(h.done)
		defer cancel()

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				h.finish(*new(T), ctx.Err())
				return
			}
		}

		h.finish(fn(ctx))
	}()

	return h
}

func (h *Handle[T]) finish(result T, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.abandoned {
		return
	}
	h.result = result
	h.err = err
}

// Abandon discards the pending result. It is safe to call more than once and
// after completion.
func (h *Handle[T]) Abandon() {
	h.mu.Lock()
	h.abandoned = true
	var zero T
	h.result = zero
	h.err = nil
	h.mu.Unlock()
	h.cancel()
}

func (h *Handle[T]) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the task completes or ctx is done. If ctx ends first the
// handle is abandoned and ctx.Err() is returned.
func (h *Handle[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-h.done:
	case <-ctx.Done():
		h.Abandon()
		var zero T
		return zero, ctx.Err()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.abandoned {
		var zero T
		return zero, ErrAbandoned
	}
	return h.result, h.err
}

// Run is Start followed by Wait on the same context.
func Run[T any](ctx context.Context, delay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	return Start(ctx, delay, fn).Wait(ctx)
}
