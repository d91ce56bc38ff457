// Package lite provides the curried entry points of package solo. Each
// function takes everything but the Result and returns a function of the
// Result, which makes the combinators usable as pipe.Pipe steps:
//
//	out, err := pipe.Pipe(rop.Success[string](1),
//		lite.Map[string](func(x int) int { return x + 1 }),
//		lite.Filter(func(x int) bool { return x > 1 }, "too small"),
//	)
//
// lite.X(args...)(r) always behaves exactly like solo.X(r, args...).
package lite
