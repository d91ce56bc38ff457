package task

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ib-77/excelsia/pkg/rop"
)

var (
	// ErrNoOutcome is reported by Await when the channel closes without an outcome
	ErrNoOutcome = errors.New("task: no outcome")
)

// Outcome is the settled value of one Task invocation.
type Outcome[V any] struct {
	Val V
	Err error
}

// Start invokes t on its own goroutine. The returned channel delivers exactly
// one Outcome and is then closed. A panic inside t is delivered as Err; see
// rop.Recovered.
func Start[V any](ctx context.Context, t Task[V]) <-chan Outcome[V] {
	out := make(chan Outcome[V], 1)

	go func() {
		defer close(out)
		out <- settle(ctx, t)
	}()

	return out
}

// Await waits for the Outcome delivered on ch or for ctx to end, whichever
// comes first. The Task behind ch keeps running when ctx ends first.
func Await[V any](ctx context.Context, ch <-chan Outcome[V]) (V, error) {
	var zero V

	select {
	case o, ok := <-ch:
		if !ok {
			return zero, ErrNoOutcome
		}
		return o.Val, o.Err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func settle[V any](ctx context.Context, t Task[V]) (o Outcome[V]) {
	defer func() {
		if v := recover(); v != nil {
			o = Outcome[V]{Err: rop.Recovered(v)}
		}
	}()

	o.Val, o.Err = t(ctx)
	return o
}
