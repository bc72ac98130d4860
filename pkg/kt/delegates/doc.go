// Package delegates provides properties that notify or consult a callback
// on assignment, like Kotlin's Delegates.observable and Delegates.vetoable.
//
// Callbacks run synchronously on the goroutine calling Set. The properties
// are not safe for concurrent use.
package delegates
