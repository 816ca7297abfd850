// Package probe checks that carousel images can be loaded.
//
// The page never fetches images itself; browsers do. A probe is an optional
// preflight run by the CLI so that a broken image address shows up before
// the page is served rather than as a hidden image in someone's browser.
//
// The main components are:
//
//   - [Client]: HTTP client with connection limits and per-request timeouts
//   - [Result]: Outcome of probing a single image
package probe
