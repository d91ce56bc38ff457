// Package solo contains the direct, synchronous combinators over
// rop.Result[E, V]. Every function takes the Result first and applies at once;
// the curried counterparts live in package lite.
//
// Highlights:
// - Succeed/Fail: construct a Result
// - Map/FlatMap/MapFailure/MapBoth: transform one or both branches
// - OnFailure/Recover: move a Failure back onto the success track
// - Tap/TapFailure/TapBoth: side effects that return the input unchanged
// - Filter: demote a Success that fails a predicate
// - Match/MapWithDefault: reduce to a raw value
// - Unwrap/UnwrapUnsafe/UnwrapWithDefault/ToPointer/ToValue: leave the Result
// - Sequence/Collect: combine many Results
//
// A Failure handed to a success-side combinator (and a Success handed to a
// failure-side one) is returned with its ID untouched and the supplied
// function is never called.
package solo
