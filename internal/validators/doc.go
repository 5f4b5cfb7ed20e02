// Package validators holds the pure field checks and input normalizers used
// by the employee form: required text, email shape, ISO calendar dates,
// phone digits and the loose date format conversion.
package validators
