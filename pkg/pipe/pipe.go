package pipe

// Pipe threads value through fns from left to right. A panicking step stops
// the chain; the zero T is returned with a *PipeError naming that step.
func Pipe[T any](value T, fns ...func(T) T) (T, error) {
	acc := value
	for i, fn := range fns {
		next, err := apply(i, fn, acc)
		if err != nil {
			var zero T
			return zero, err
		}
		acc = next
	}
	return acc, nil
}

// PipeE is Pipe for steps that report failure through an error.
func PipeE[T any](value T, fns ...func(T) (T, error)) (T, error) {
	acc := value
	for i, fn := range fns {
		next, err := applyE(i, fn, acc)
		if err != nil {
			var zero T
			return zero, err
		}
		acc = next
	}
	return acc, nil
}

func Pipe2[A, B, C any](a A, f1 func(A) B, f2 func(B) C) (C, error) {
	b, err := apply(0, f1, a)
	if err != nil {
		var zero C
		return zero, err
	}
	return apply(1, f2, b)
}

func Pipe3[A, B, C, D any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D) (D, error) {
	c, err := Pipe2(a, f1, f2)
	if err != nil {
		var zero D
		return zero, err
	}
	return apply(2, f3, c)
}

func Pipe4[A, B, C, D, E any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) (E, error) {
	d, err := Pipe3(a, f1, f2, f3)
	if err != nil {
		var zero E
		return zero, err
	}
	return apply(3, f4, d)
}

func Pipe5[A, B, C, D, E, F any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F) (F, error) {
	e, err := Pipe4(a, f1, f2, f3, f4)
	if err != nil {
		var zero F
		return zero, err
	}
	return apply(4, f5, e)
}

func apply[In, Out any](index int, fn func(In) Out, in In) (out Out, err error) {
	defer func() {
		if v := recover(); v != nil {
			var zero Out
			out, err = zero, newPipeError(index, fn, panicked(v))
		}
	}()
	return fn(in), nil
}

func applyE[In, Out any](index int, fn func(In) (Out, error), in In) (out Out, err error) {
	defer func() {
		if v := recover(); v != nil {
			var zero Out
			out, err = zero, newPipeError(index, fn, panicked(v))
		}
	}()

	out, err = fn(in)
	if err != nil {
		var zero Out
		return zero, newPipeError(index, fn, err)
	}
	return out, nil
}
