// Package model defines the data structures shared by the minifier layers.
package model

// Path represents a file system path.
type Path string

// Source represents a C source file loaded for minification.
type Source struct {
	Origin  Path
	Content []byte
}
