// Package confirm provides the yes/no confirmation step that guards
// destructive or committing actions.
//
// Gate is the single abstraction callers depend on. Dialog is an in-process
// implementation a view host drives by calling Confirm or Cancel; Prompt asks
// on a terminal and reads one answer line.
package confirm
