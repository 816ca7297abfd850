// Package tui draws a mounted cat page in the terminal with Bubble Tea.
//
// The screen follows one page through its store subscription and forwards
// key presses to the page as actions. It never loads images: the carousel
// shows the current caption and URL. Entrance transitions are drawn frame
// by frame only while one is in progress.
package tui
