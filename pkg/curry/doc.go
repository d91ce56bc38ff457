// Package curry adapts function arity for point-free composition.
//
// The typed helpers (Curry2, Curry3, Partial2, ...) cover the common cases at
// compile time. Curry wraps any function value with an explicit or declared
// arity and accumulates arguments at run time, any number per call:
//
//	add3 := curry.Curry(func(a, b, c int) int { return a + b + c })
//	add3(1).(curry.Fn)(2, 3) // 6
package curry
