package solo

import "github.com/ib-77/excelsia/pkg/rop"

// Unwrap returns the value of a Success and the error of a Failure.
func Unwrap[E, V any](input rop.Result[E, V]) (V, E) {
	return input.Unwrap()
}

// Merge is Unwrap for Results whose two sides share a type.
func Merge[T any](input rop.Result[T, T]) T {
	if input.IsSuccess() {
		return input.Value()
	}
	return input.Err()
}

// UnwrapUnsafe returns the value of a Success and panics with the wrapped
// error of a Failure, or with rop.ErrEmpty for an empty Result.
func UnwrapUnsafe[E, V any](input rop.Result[E, V]) V {
	switch {
	case input.IsSuccess():
		return input.Value()
	case input.IsFailure():
		panic(input.Err())
	}
	panic(rop.ErrEmpty)
}

func UnwrapWithDefault[E, V any](input rop.Result[E, V], fallback V) V {
	if input.IsSuccess() {
		return input.Value()
	}
	return fallback
}

// ToPointer returns a pointer to the value of a Success and nil otherwise.
func ToPointer[E, V any](input rop.Result[E, V]) *V {
	if input.IsSuccess() {
		v := input.Value()
		return &v
	}
	return nil
}

// ToValue returns the value of a Success with true, or the zero V with false.
func ToValue[E, V any](input rop.Result[E, V]) (V, bool) {
	if input.IsSuccess() {
		return input.Value(), true
	}
	var zero V
	return zero, false
}
