// Package result contains Result[T], a success/failure wrapper modelled on
// Kotlin's Result, plus synchronous combinators over it.
//
// Highlights:
// - Success/Failure/RunCatching: construct Result[T]
// - Get/GetOrZero/GetOrDefault/GetOrElse/Err: read the outcome
// - OnSuccess/OnFailure: side effects without changing the result
// - Map/MapCatching/FlatMap: move from Result[In] to Result[Out]
// - Recover/RecoverCatching: turn a failure back into a value
// - Fold: reduce to a concrete value via success/failure handlers
package result
