// Package statebox implements a minimal unidirectional state container. A
// single state cell is advanced only by pure Reducers, observed through
// Listener callbacks, and optionally instrumented by a chain of Middleware
// wrapping the dispatch path.
//
// Typical usage looks like:
//   - Write Reducers for each slice of your state
//   - Compose them with Combine (struct state) or CombineMap (keyed state)
//   - Create a Store with NewStore, or with Configure to enable logging,
//     metrics, and panic recovery
//   - Wrap its dispatch with ApplyMiddleware when you need interceptors
//   - Subscribe Listeners and Dispatch actions
//
// Everything runs synchronously on the caller's goroutine. A Store is not
// safe for concurrent use.
//
// The examples/ directory contains runnable counter and todo list programs.
package statebox
