// Package nullsafe provides null-aware chaining in the spirit of Kotlin's
// ?. and ?: operators. "Null" means kt.IsNil: an untyped nil or a nil
// pointer, map, slice, chan, func or interface.
//
// Highlights:
// - Of/Null: wrap a value
// - Let: safe call, the block only runs on a non-null value
// - Apply: side effect on a non-null value
// - IfNull/OrElse: elvis
// - TakeIf/TakeUnless: keep the value only when a predicate agrees
// - Safe/SafeOr: turn nil dereference panics into null
package nullsafe
