// Package chain provides a fluent wrapper around rop.Result[E, V]
// for building synchronous railway-oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[E, U] via a function
// - Map/MapFailure: transform one side of the chain
// - Ensure/EnsureFailure: run side effects without changing the result
// - Filter/Recover/OnFailure: move between the tracks
// - Finally: collapse the chain into a final value via handlers
package chain
