// Package ranges provides closed, step-wise progressions over the five
// supported kinds: 8/16/32/64-bit signed integers and characters (runes).
//
// A Range is generated eagerly on construction and never changes afterwards,
// so it can be iterated any number of times and shared between goroutines.
//
// Generation rules:
// - start <= end: values from start upward while value <= end
// - start > end: values from start downward while value > end (end itself is
//   never part of a decreasing range)
// - the step is a positive magnitude; zero or negative steps are rejected
// - generation stops before a step would overflow the kind
//
// Construction:
// - Bytes/Shorts/Ints/Longs/Chars and Of: statically typed constructors
// - Build: type-erased factory dispatching on the dynamic type of start
// - BuildKind: explicit kind tag over int64 bounds
// - Definition/ParseDefinitions/LoadDefinitions: ranges described in yaml
package ranges
