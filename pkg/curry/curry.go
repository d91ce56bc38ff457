package curry

func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return fn(a, b, c)
			}
		}
	}
}

func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R { return fn(a, b, c, d) })
	}
}

func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Partial2 fixes the first argument of a binary function.
func Partial2[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

// Partial3 fixes the first argument of a ternary function.
func Partial3[A, B, C, R any](fn func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return fn(a, b, c)
	}
}

// Partial3x2 fixes the first two arguments of a ternary function at once.
func Partial3x2[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return fn(a, b, c)
	}
}
