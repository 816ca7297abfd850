// Package dashboard provides the embedded browser page for PurrBoard.
//
// This package uses Go's embed directive to include the page template, its
// CSS and its JavaScript at compile time. This enables single-binary
// deployment without external asset files.
//
// The template is rendered by the server package at the root path ("/").
// Users of the purrboard library should not need to interact with this
// package directly.
package dashboard

import "embed"

// Assets is an embedded filesystem containing the page template.
//
// The filesystem structure is:
//
//	assets/
//	  index.gohtml  - html/template page with inline CSS and JavaScript
//
//go:embed assets/*
var Assets embed.FS
