// Package common contains shared constants and sentinel errors used across
// empdir components.
package common

// Keys under which the application keeps its state in local storage.
const (
	StorageKeyEmployees = "employees"
	StorageKeyLanguage  = "lang"
)
