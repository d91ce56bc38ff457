// Package taskresult joins package task and package rop: a TaskResult[V] is a
// deferred computation that resolves to a rop.Result[error, V] and never
// panics or returns a bare error.
//
// Combinators run the underlying TaskResult, apply the matching solo
// combinator to its Result and resolve to the outcome. A Failure travels down
// the chain untouched (same error, same Result ID) and no mapper or tapper
// sees it. A panic in any mapper becomes a Failure at that point; a panic
// whose value is an error is kept as that error, any other value becomes a
// *rop.PanicError.
//
//	user := taskresult.Map(
//		httptask.ToJSON[User](httptask.Of(req)),
//		func(u User) string { return u.Name },
//	)
//	r := user.Run(ctx) // rop.Result[error, string]
//
// The gerund forms (Mapping, FailureMapping, ...) are the curried
// counterparts for use with pipe.Pipe.
package taskresult
