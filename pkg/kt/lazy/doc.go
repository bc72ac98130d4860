// Package lazy provides a thread-safe value that is computed on first access
// and cached afterwards.
//
// The initializer runs at most once per successful computation. When it
// returns an error (or panics) nothing is cached and the next Value call runs
// it again from scratch, so a permanently failing initializer is re-run on
// every access.
//
// Highlights:
// - New/Of/Must: construct a Lazy from an initializer
// - Value/MustValue: read, computing first if needed
// - IsInitialized: race-tolerant status read
// - Memoize: function form of New
package lazy
