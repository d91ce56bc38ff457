// Package task provides Task[V], a deferred computation that produces a V or
// fails with an error when invoked.
//
// Combinators (Map, FlatMap, Tap, Catch, Delay, Limit) build new Tasks that
// close over the ones they are given; nothing runs until the outermost Task
// is invoked, and invoking it twice runs the whole chain twice. The gerund
// forms (Mapping, FlatMapping, ...) are the curried counterparts for use with
// pipe.Pipe.
//
// Invoking a Task blocks the caller. Start runs one invocation on its own
// goroutine so that it can be raced against a timer:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	v, err := task.Await(ctx, task.Start(context.Background(), slow))
//
// There is no cancellation beyond what the wrapped function does with its
// context.
package task
