package solo

import (
	"errors"

	"github.com/ib-77/excelsia/pkg/rop"
)

func Succeed[E, V any](input V) rop.Result[E, V] {
	return rop.Success[E](input)
}

func Fail[V, E any](err E) rop.Result[E, V] {
	return rop.Failure[V](err)
}

// Handlers are the two branches consumed by Match.
type Handlers[E, V, Out any] struct {
	OnSuccess func(value V) Out
	OnFailure func(err E) Out
}

func Map[E, In, Out any](input rop.Result[E, In],
	onSuccess func(r In) Out) rop.Result[E, Out] {

	if input.IsSuccess() {
		return rop.Success[E](onSuccess(input.Value()))
	}
	return rop.FailureFrom[Out](input)
}

// FlatMap returns whatever onSuccess returns, without wrapping it again.
func FlatMap[E, In, Out any](input rop.Result[E, In],
	onSuccess func(r In) rop.Result[E, Out]) rop.Result[E, Out] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return rop.FailureFrom[Out](input)
}

func MapFailure[E, F, V any](input rop.Result[E, V],
	onFailure func(err E) F) rop.Result[F, V] {

	if input.IsFailure() {
		return rop.Failure[V](onFailure(input.Err()))
	}
	return rop.SuccessFrom[F](input)
}

// OnFailure recovers a Failure into a Success built from its error.
func OnFailure[E, V any](input rop.Result[E, V],
	handler func(err E) V) rop.Result[E, V] {

	if input.IsFailure() {
		return rop.Success[E](handler(input.Err()))
	}
	return input
}

func MapBoth[E, F, In, Out any](input rop.Result[E, In],
	onFailure func(err E) F,
	onSuccess func(r In) Out) rop.Result[F, Out] {

	switch {
	case input.IsSuccess():
		return rop.Success[F](onSuccess(input.Value()))
	case input.IsFailure():
		return rop.Failure[Out](onFailure(input.Err()))
	}
	return rop.Result[F, Out]{}
}

// Match calls the handler for the side input is on. An empty Result calls
// neither and yields the zero Out.
func Match[E, V, Out any](input rop.Result[E, V], handlers Handlers[E, V, Out]) Out {
	switch {
	case input.IsSuccess():
		return handlers.OnSuccess(input.Value())
	case input.IsFailure():
		return handlers.OnFailure(input.Err())
	}
	var zero Out
	return zero
}

func MapWithDefault[E, In, Out any](input rop.Result[E, In],
	onSuccess func(r In) Out, defaultValue Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return defaultValue
}

func Recover[E, V any](input rop.Result[E, V], value V) rop.Result[E, V] {
	if input.IsFailure() {
		return rop.Success[E](value)
	}
	return input
}

func Tap[E, V any](input rop.Result[E, V], onSuccess func(r V)) rop.Result[E, V] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

func TapFailure[E, V any](input rop.Result[E, V], onFailure func(err E)) rop.Result[E, V] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

func TapBoth[E, V any](input rop.Result[E, V],
	onFailure func(err E),
	onSuccess func(r V)) rop.Result[E, V] {

	if input.IsSuccess() {
		return Tap(input, onSuccess)
	}
	return TapFailure(input, onFailure)
}

// Filter keeps a Success whose value satisfies predicate and turns any other
// Success into Failure(failValue). Failures pass through.
func Filter[E, V any](input rop.Result[E, V],
	predicate func(r V) bool, failValue E) rop.Result[E, V] {

	if input.IsSuccess() {
		if predicate(input.Value()) {
			return input
		}
		return rop.Failure[V](failValue)
	}
	return input
}

// Sequence turns a slice of Results into a Result of a slice. The first
// Failure or empty Result wins.
func Sequence[E, V any](inputs []rop.Result[E, V]) rop.Result[E, []V] {
	values := make([]V, 0, len(inputs))
	for _, in := range inputs {
		if !in.IsSuccess() {
			return rop.FailureFrom[[]V](in)
		}
		values = append(values, in.Value())
	}
	return rop.Success[E](values)
}

// Collect is Sequence that keeps going past the first Failure and joins all
// errors into one. Any empty Result makes the whole collection empty.
func Collect[V any](inputs []rop.Result[error, V]) rop.Result[error, []V] {
	var err error
	values := make([]V, 0, len(inputs))

	for _, in := range inputs {
		if in.IsEmpty() {
			return rop.Result[error, []V]{}
		}
		if in.IsFailure() {
			e := rop.GetErrors(err)
			e = append(e, in.Err())
			err = errors.Join(e...)
			continue
		}
		values = append(values, in.Value())
	}

	if !rop.IsNil(err) {
		return rop.Failure[[]V](err)
	}
	return rop.Success[error](values)
}
