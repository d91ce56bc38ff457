package task

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Task is a deferred computation. Nothing runs until the Task is invoked, and
// every invocation runs the computation again. A non-nil error is the Task's
// rejection.
type Task[V any] func(ctx context.Context) (V, error)

func Create[V any](fn func(ctx context.Context) (V, error)) Task[V] {
	return fn
}

// Of lifts a value into a Task that resolves to it.
func Of[V any](value V) Task[V] {
	return func(context.Context) (V, error) {
		return value, nil
	}
}

// Reject returns a Task that always fails with err.
func Reject[V any](err error) Task[V] {
	return func(context.Context) (V, error) {
		var zero V
		return zero, err
	}
}

// Run invokes the Task.
func (t Task[V]) Run(ctx context.Context) (V, error) {
	return t(ctx)
}

func Map[In, Out any](t Task[In], mapper func(In) Out) Task[Out] {
	return func(ctx context.Context) (Out, error) {
		v, err := t(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		return mapper(v), nil
	}
}

// FlatMap awaits t, builds the next Task from its value and awaits that one.
func FlatMap[In, Out any](t Task[In], mapper func(In) Task[Out]) Task[Out] {
	return func(ctx context.Context) (Out, error) {
		v, err := t(ctx)
		if err != nil {
			var zero Out
			return zero, err
		}
		return mapper(v)(ctx)
	}
}

func Tap[V any](t Task[V], fn func(V)) Task[V] {
	return func(ctx context.Context) (V, error) {
		v, err := t(ctx)
		if err != nil {
			return v, err
		}
		fn(v)
		return v, nil
	}
}

// Catch gives handler a chance to turn a rejection back into a value.
func Catch[V any](t Task[V], handler func(error) (V, error)) Task[V] {
	return func(ctx context.Context) (V, error) {
		v, err := t(ctx)
		if err != nil {
			return handler(err)
		}
		return v, nil
	}
}

// Delay holds the value of t for d before resolving. A ctx that ends first
// rejects the Task with the ctx error.
func Delay[V any](t Task[V], d time.Duration) Task[V] {
	return func(ctx context.Context) (V, error) {
		v, err := t(ctx)
		if err != nil {
			return v, err
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return v, nil
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}
}

// Limit waits for limiter before every run of t. A nil limiter leaves t
// unchanged.
func Limit[V any](t Task[V], limiter *rate.Limiter) Task[V] {
	if limiter == nil {
		return t
	}
	return func(ctx context.Context) (V, error) {
		if err := limiter.Wait(ctx); err != nil {
			var zero V
			return zero, err
		}
		return t(ctx)
	}
}
