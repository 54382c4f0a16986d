// Package swedishid validates and parses Swedish identity numbers.
//
// Three kinds of numbers are supported:
//   - Personnummer: personal identity number for registered residents
//   - Samordningsnummer: coordination number for people without a
//     personnummer; the birth day is encoded with +60
//   - Organisationsnummer: number for legal entities
//
// Every number goes through the same pipeline: normalize, check shape,
// verify the trailing check digit, extract kind-specific fields. Values are
// created only through the Parse functions and never change afterwards.
//
// Validation is syntactic. A valid number is not proof that a person or
// company with that number exists.
//
// # Domain Purity
//
// The package performs no I/O and keeps no global mutable state. All
// functions are safe for concurrent use.
//
// # Century
//
// Ten-digit personal numbers carry a two-digit year. The century is resolved
// by time.Parse's default window (69-99 map to 19xx, 00-68 to 20xx). When a
// twelve-digit form with an explicit 18, 19 or 20 century is supplied, that
// century is used instead and dropped from the stored number.
//
// # Legacy prefix
//
// Input starting with the literal "16" has those two characters removed
// before anything else happens. Some registries prefix organisation numbers
// this way. The rule is applied to every kind and is kept as is for
// compatibility.
package swedishid
