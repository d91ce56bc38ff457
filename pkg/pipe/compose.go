package pipe

import "context"

// Compose returns fns applied from right to left.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// ComposeAsync is Compose for steps that block and may fail. Steps run one
// after the other, right to left; the first error is returned as-is and the
// remaining steps are skipped.
func ComposeAsync[T any](fns ...func(ctx context.Context, value T) (T, error)) func(ctx context.Context, value T) (T, error) {
	return func(ctx context.Context, value T) (T, error) {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			next, err := fns[i](ctx, result)
			if err != nil {
				var zero T
				return zero, err
			}
			result = next
		}
		return result, nil
	}
}
