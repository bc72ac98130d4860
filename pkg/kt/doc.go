// Package kt holds the pieces shared by every kotlinize package: sentinel
// errors, nil detection, small functional types, Pair/Triple and the
// precondition helpers (Require, Check, Error, TODO).
//
// Sub-packages:
// - lazy: thread-safe, exactly-once lazy values
// - ranges: eagerly generated integer and character progressions
// - nullsafe: null-aware chaining (Let, TakeIf, IfNull)
// - delegates: observable and vetoable properties
// - result: success/failure wrapper with fold/map/recover
// - scope: Use for closers plus Let/Also/Apply/Run scope functions
package kt
