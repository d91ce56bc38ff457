package taskresult

import (
	"context"
	"time"

	"github.com/ib-77/excelsia/pkg/rop"
	"github.com/ib-77/excelsia/pkg/rop/solo"
	"github.com/ib-77/excelsia/pkg/task"
)

// TaskResult is a Task whose outcome is a rop.Result. Invoking it never
// panics: errors returned by the wrapped operation, and panics raised by it
// or by any combinator function, all come back as a Failure.
type TaskResult[V any] func(ctx context.Context) rop.Result[error, V]

// Create wraps a fallible operation. A returned error or a panic becomes a
// Failure; otherwise the value becomes a Success.
func Create[V any](fn func(ctx context.Context) (V, error)) TaskResult[V] {
	return guard(func(ctx context.Context) rop.Result[error, V] {
		return rop.FromPair(fn(ctx))
	})
}

// FromTask is Create for an existing Task.
func FromTask[V any](t task.Task[V]) TaskResult[V] {
	return Create(t)
}

// FromResult returns a TaskResult that resolves to r on every invocation.
func FromResult[V any](r rop.Result[error, V]) TaskResult[V] {
	return func(context.Context) rop.Result[error, V] {
		return r
	}
}

// Of lifts a value into a TaskResult that resolves to a fresh Success.
func Of[V any](value V) TaskResult[V] {
	return Create(func(context.Context) (V, error) {
		return value, nil
	})
}

// Fail lifts an error into a TaskResult that resolves to a fresh Failure.
func Fail[V any](err error) TaskResult[V] {
	return guard(func(context.Context) rop.Result[error, V] {
		return rop.Failure[V](err)
	})
}

// Run invokes the TaskResult.
func (tr TaskResult[V]) Run(ctx context.Context) rop.Result[error, V] {
	return tr(ctx)
}

// Task views tr as a Task of Result. The Task never rejects.
func (tr TaskResult[V]) Task() task.Task[rop.Result[error, V]] {
	return func(ctx context.Context) (rop.Result[error, V], error) {
		return tr(ctx), nil
	}
}

// ToTask turns a Failure into the rejection of a plain Task. An empty Result
// rejects with rop.ErrEmpty.
func ToTask[V any](tr TaskResult[V]) task.Task[V] {
	return func(ctx context.Context) (V, error) {
		var zero V

		r := tr(ctx)
		switch {
		case r.IsFailure():
			return zero, r.Err()
		case r.IsEmpty():
			return zero, rop.ErrEmpty
		}
		return r.Value(), nil
	}
}

func Map[In, Out any](tr TaskResult[In], mapper func(In) Out) TaskResult[Out] {
	return then(tr, func(r rop.Result[error, In]) rop.Result[error, Out] {
		return solo.Map(r, mapper)
	})
}

func MapFailure[V any](tr TaskResult[V], mapper func(error) error) TaskResult[V] {
	return then(tr, func(r rop.Result[error, V]) rop.Result[error, V] {
		return solo.MapFailure(r, mapper)
	})
}

func MapBoth[In, Out any](tr TaskResult[In], failureMapper func(error) error, successMapper func(In) Out) TaskResult[Out] {
	return then(tr, func(r rop.Result[error, In]) rop.Result[error, Out] {
		return solo.MapBoth(r, failureMapper, successMapper)
	})
}

func Tap[V any](tr TaskResult[V], fn func(V)) TaskResult[V] {
	return then(tr, func(r rop.Result[error, V]) rop.Result[error, V] {
		return solo.Tap(r, fn)
	})
}

func TapFailure[V any](tr TaskResult[V], fn func(error)) TaskResult[V] {
	return then(tr, func(r rop.Result[error, V]) rop.Result[error, V] {
		return solo.TapFailure(r, fn)
	})
}

// OnFailure recovers a Failure into a Success built from its error.
func OnFailure[V any](tr TaskResult[V], handler func(error) V) TaskResult[V] {
	return then(tr, func(r rop.Result[error, V]) rop.Result[error, V] {
		return solo.OnFailure(r, handler)
	})
}

// FlatMap awaits tr, builds the next TaskResult from its value and awaits
// that one with the same ctx.
func FlatMap[In, Out any](tr TaskResult[In], mapper func(In) TaskResult[Out]) TaskResult[Out] {
	return guard(func(ctx context.Context) rop.Result[error, Out] {
		return solo.FlatMap(tr(ctx), func(v In) rop.Result[error, Out] {
			return mapper(v)(ctx)
		})
	})
}

// Delay holds a Success for d before resolving. Failures resolve at once. A
// ctx that ends during the wait resolves to Failure(ctx.Err()).
func Delay[V any](tr TaskResult[V], d time.Duration) TaskResult[V] {
	return guard(func(ctx context.Context) rop.Result[error, V] {
		return solo.FlatMap(tr(ctx), func(v V) rop.Result[error, V] {
			return rop.FromPair(task.Delay(task.Of(v), d)(ctx))
		})
	})
}

// Start invokes tr on its own goroutine; see task.Start.
func Start[V any](ctx context.Context, tr TaskResult[V]) <-chan task.Outcome[rop.Result[error, V]] {
	return task.Start(ctx, tr.Task())
}

func then[In, Out any](tr TaskResult[In], step func(rop.Result[error, In]) rop.Result[error, Out]) TaskResult[Out] {
	return guard(func(ctx context.Context) rop.Result[error, Out] {
		return step(tr(ctx))
	})
}

func guard[V any](fn func(ctx context.Context) rop.Result[error, V]) TaskResult[V] {
	return func(ctx context.Context) (res rop.Result[error, V]) {
		defer func() {
			if v := recover(); v != nil {
				res = rop.Failure[V](rop.Recovered(v))
			}
		}()
		return fn(ctx)
	}
}
