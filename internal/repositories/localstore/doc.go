// Package localstore implements the durable key/value storage the directory
// persists to. Values are opaque byte slices stored under string keys in a
// single SQLite table; an in-memory variant serves tests and throwaway
// sessions, and SealedRepository adds passphrase based encryption on top of
// either.
package localstore
