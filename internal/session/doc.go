// Package session mounts cat pages.
//
// A [Session] couples one view state machine with the three periodic timers
// that drive it (carousel advance, progress tick, fun fact rotation) and
// the debounced dismissal of the like acknowledgment. Mounting registers
// the timers; unmounting cancels all of them unconditionally.
//
// A [Manager] hands out sessions with unique IDs and unmounts whatever is
// still mounted when it is closed.
package session
