// Package viewmodel holds the UI-agnostic state behind the two screens of
// the directory: the searchable, paginated, selectable employee list and the
// create/edit form. Hosts render from these types and feed user input back
// into them; nothing here knows about terminals.
package viewmodel
