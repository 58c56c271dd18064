// Package app runs modalcore in a terminal.
//
// It wires the configuration into an editor and a dispatcher, owns the
// tcell screen, and turns terminal events into key presses. Rendering is a
// plain text view with a status line; everything beyond one document and
// one window is reported as unavailable.
package app
