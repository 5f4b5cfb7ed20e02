// Package cli is the terminal front end of empdir: a cobra command tree,
// an interactive shell over the list and form view models, and plain-text
// rendering of the directory.
package cli
