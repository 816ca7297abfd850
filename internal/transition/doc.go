// Package transition describes enter, exit and hover transitions of page
// nodes independently of the engine that draws them.
//
// A [Spec] is rendered to CSS custom properties with [Style] for the
// browser page, and applied frame by frame to terminal output through an
// [Animator].
package transition
