package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type variant uint8

const (
	noTag variant = iota
	successTag
	failureTag
)

// Result is either a Success carrying a value of type V or a Failure carrying
// an error of type E. The zero Result carries neither tag and is not a Result
// as far as IsResult is concerned.
//
// Results are immutable. Every constructor stamps a fresh ID; combinators
// that pass a Result through unchanged keep its ID, so "the same Result" can
// be checked with ID even across type parameter changes.
type Result[E, V any] struct {
	id        uuid.UUID
	createdAt time.Time
	tag       variant
	value     V
	err       E
}

func Success[E, V any](value V) Result[E, V] {
	return Result[E, V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		tag:       successTag,
		value:     value,
	}
}

func Failure[V, E any](err E) Result[E, V] {
	return Result[E, V]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		tag:       failureTag,
		err:       err,
	}
}

// FailureFrom re-types a Failure to a new value type, keeping its ID, error and
// creation time. An empty Result stays empty. It panics when from is a
// Success.
func FailureFrom[Out, E, In any](from Result[E, In]) Result[E, Out] {
	if from.tag == noTag {
		return Result[E, Out]{}
	}
	if from.tag != failureTag {
		panic("rop: FailureFrom called with a non-failure result")
	}
	return Result[E, Out]{
		id:        from.id,
		createdAt: from.createdAt,
		tag:       failureTag,
		err:       from.err,
	}
}

// SuccessFrom re-types a Success to a new error type, keeping its ID, value and
// creation time. An empty Result stays empty. It panics when from is a
// Failure.
func SuccessFrom[Out, E, V any](from Result[E, V]) Result[Out, V] {
	if from.tag == noTag {
		return Result[Out, V]{}
	}
	if from.tag != successTag {
		panic("rop: SuccessFrom called with a non-success result")
	}
	return Result[Out, V]{
		id:        from.id,
		createdAt: from.createdAt,
		tag:       successTag,
		value:     from.value,
	}
}

// Execute runs fn and wraps its return value in a Success. A panic inside fn
// is recovered into a Failure; see Recovered.
func Execute[V any](fn func() V) (res Result[error, V]) {
	defer func() {
		if v := recover(); v != nil {
			res = Failure[V](Recovered(v))
		}
	}()
	return Success[error](fn())
}

// Try is Execute for functions following the (value, error) convention.
func Try[V any](fn func() (V, error)) (res Result[error, V]) {
	defer func() {
		if v := recover(); v != nil {
			res = Failure[V](Recovered(v))
		}
	}()
	return FromPair(fn())
}

// FromPair converts a (value, error) pair to a Result.
func FromPair[V any](value V, err error) Result[error, V] {
	if err != nil {
		return Failure[V](err)
	}
	return Success[error](value)
}

func (r Result[E, V]) Value() V {
	return r.value
}

func (r Result[E, V]) Err() E {
	return r.err
}

func (r Result[E, V]) IsSuccess() bool {
	return r.tag == successTag
}

func (r Result[E, V]) IsFailure() bool {
	return r.tag == failureTag
}

// IsEmpty reports whether r is the zero Result, which is neither a Success
// nor a Failure. Combinators pass it through untouched.
func (r Result[E, V]) IsEmpty() bool {
	return r.tag == noTag
}

// Unwrap returns the value and the error. Exactly one of them is meaningful;
// the other is the zero value of its type.
func (r Result[E, V]) Unwrap() (V, E) {
	return r.value, r.err
}

func (r Result[E, V]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[E, V]) ID() uuid.UUID {
	return r.id
}

// String renders Result.Success(<value>) or Result.Failure(<error>). Failures
// whose error is an error render its message.
func (r Result[E, V]) String() string {
	switch r.tag {
	case successTag:
		return fmt.Sprintf("Result.Success(%v)", r.value)
	case failureTag:
		if err, ok := any(r.err).(error); ok && err != nil {
			return fmt.Sprintf("Result.Failure(%s)", err.Error())
		}
		return fmt.Sprintf("Result.Failure(%v)", r.err)
	default:
		return "Result.Empty"
	}
}

func (r Result[E, V]) variant() variant {
	return r.tag
}
