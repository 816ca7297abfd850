// Package server provides the HTTP rendering layer of the cat page.
//
// This package is internal to PurrBoard and handles all HTTP concerns:
//
//   - Page rendering: Executes the embedded html/template page at "/"
//   - REST API: Content, per-page snapshots and page actions under "/api"
//   - Server-Sent Events: Each connection to "/api/sse" mounts its own page
//     and receives that page's snapshots until it disconnects
//
// The server supports graceful shutdown via context cancellation, with a
// 5-second timeout for in-flight requests. Pages mounted by SSE connections
// are unmounted when their connection ends.
//
// Users of the purrboard library should not need to interact with this
// package directly. The server is started by [purrboard.Board.Serve].
package server
