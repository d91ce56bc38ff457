package chain

import (
	"github.com/ib-77/excelsia/pkg/rop"
	"github.com/ib-77/excelsia/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[E, V any] struct {
	result rop.Result[E, V]
}

// Start creates a new chain from a rop.Result
func Start[E, V any](result rop.Result[E, V]) Chain[E, V] {
	return Chain[E, V]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[E, V any](value V) Chain[E, V] {
	return Start(rop.Success[E](value))
}

// Result returns the underlying rop.Result
func (c Chain[E, V]) Result() rop.Result[E, V] {
	return c.result
}

// Then chains a function that returns rop.Result[E, U]
func Then[E, V, U any](c Chain[E, V], onSuccess func(V) rop.Result[E, U]) Chain[E, U] {
	return Chain[E, U]{result: solo.FlatMap(c.result, onSuccess)}
}

// Map chains a pure transformation function
func Map[E, V, U any](c Chain[E, V], onSuccess func(V) U) Chain[E, U] {
	return Chain[E, U]{result: solo.Map(c.result, onSuccess)}
}

// MapFailure transforms the error of a failed chain
func MapFailure[E, F, V any](c Chain[E, V], onFailure func(E) F) Chain[F, V] {
	return Chain[F, V]{result: solo.MapFailure(c.result, onFailure)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[E, V]) Ensure(onSuccess func(V)) Chain[E, V] {
	return Chain[E, V]{result: solo.Tap(c.result, onSuccess)}
}

// EnsureFailure performs a side effect on failure without changing the result
func (c Chain[E, V]) EnsureFailure(onFailure func(E)) Chain[E, V] {
	return Chain[E, V]{result: solo.TapFailure(c.result, onFailure)}
}

func (c Chain[E, V]) Filter(predicate func(V) bool, failValue E) Chain[E, V] {
	return Chain[E, V]{result: solo.Filter(c.result, predicate, failValue)}
}

func (c Chain[E, V]) Recover(value V) Chain[E, V] {
	return Chain[E, V]{result: solo.Recover(c.result, value)}
}

func (c Chain[E, V]) OnFailure(handler func(E) V) Chain[E, V] {
	return Chain[E, V]{result: solo.OnFailure(c.result, handler)}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[E, V, U any](c Chain[E, V], onSuccess func(V) U, onFailure func(E) U) U {
	return solo.Match(c.result, solo.Handlers[E, V, U]{
		OnSuccess: onSuccess,
		OnFailure: onFailure,
	})
}
