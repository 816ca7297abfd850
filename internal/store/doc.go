// Package store keeps the latest snapshot of every mounted page and fans
// snapshots out to the rendering layers.
//
// This package is internal to PurrBoard. It implements a publish-subscribe
// pattern scoped by session: a subscriber follows exactly one mounted page.
//
// The main components are:
//
//   - [Store]: Interface defining storage and subscription operations
//   - [MemoryStore]: In-memory implementation of Store with pub/sub
//   - [Snapshot]: Storage representation of one page's view state
//
// The store is designed for concurrent access with proper synchronization.
// Subscribers receive updates via channels with non-blocking sends (slow
// subscribers will miss updates rather than block the page's timers).
//
// Nothing here outlives the process: there is no persistence.
package store
