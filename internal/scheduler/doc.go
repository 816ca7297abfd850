// Package scheduler provides the timer lifecycle for a mounted page.
//
// A page registers its periodic jobs (carousel advance, progress tick, fun
// fact rotation) when it is mounted and releases them, together with any
// pending one-shot timer, when it is unmounted. The main components are:
//
//   - [Scheduler]: owns the ticker goroutines and one-shot timers
//   - [Job]: a named periodic unit of work
//
// Users of the purrboard library should not need to interact with this
// package directly.
package scheduler
