// Package model defines the data structures shared by the repair workflow.
package model

// Path represents a file system path.
type Path string

// Job describes one file to repair and how to repair it.
type Job struct {
	Path     Path
	Strategy Strategy
	// Markers are literal fragments tried in order; the first one that
	// occurs in the file decides the cut position.
	Markers []string
}
