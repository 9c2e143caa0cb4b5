// Package render converts algorithm results into presentation value
// objects: plain structs with human-readable node names, JSON tags for
// machine output, and Text methods for terminal output.
//
// The structs own copies of everything they show; rendering a report never
// keeps the analyzed graph alive.
package render
