// Package formvalue holds the state of a single form field: its current
// value, the message of the last validation pass and whether the user has
// interacted with it.
//
// Values are plain mutable structs. The form dispatcher writes to them in
// place and the owning form reads them back when it renders or submits.
// Error is only authoritative right after a validate pass: assigning Value
// directly leaves the previous Error in place until the next pass.
//
//	name := formvalue.String("")
//	formvalue.Validate(name, validator.Required("Please enter a name"))
//	name.Invalid() // false, the field is not touched yet
//	name.Touch()
//	name.Invalid() // true
package formvalue
