// Package picnotes is the core of a pictures-and-notes board.
//
// A Board combines a Picker, a scrollable list of pictures, with a Canvas
// that takes ink from pen and mouse input and holds pictures that can be
// moved, scaled and rotated with touch gestures. Both surfaces declare
// their content as primitives on a scene; drawing pixels is left to
// package render.
//
// All methods must be called from a single goroutine.
package picnotes
