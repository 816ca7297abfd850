// Package view implements the state machine behind a single mounted cat page.
//
// The state consists of two cyclic counters (carousel index and fun-fact
// selection), one saturating counter (carousel progress), one boolean
// (acknowledgment notice) and the active tab. Every operation is synchronous
// and infallible apart from tab-name validation.
//
// Timers that drive the operations live in the session package; this
// package has no notion of time.
package view
