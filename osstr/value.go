// Package osstr carries environment and command-line strings in their
// platform-native form.
//
// On Unix-like systems a Go string read from the environment or from os.Args
// is the exact byte sequence the kernel handed over, so nothing here ever
// re-encodes it. On Windows the environment is UTF-16 and a value is only
// usable as text when it is well-formed; Value remembers whether it was.
package osstr

import "strings"

// Value is an optional native string: a variable that may be unset, set to
// the empty string, or set to arbitrary bytes.
type Value struct {
	raw       string
	set       bool
	malformed bool
}

// Absent returns an unset value.
func Absent() Value { return Value{} }

// Of returns a set value holding s verbatim.
func Of(s string) Value { return Value{raw: s, set: true} }

// Malformed returns a set value whose native form is not valid text. raw keeps
// every unit (WTF-8 on Windows) so that distinct values never compare equal.
func Malformed(raw string) Value { return Value{raw: raw, set: true, malformed: true} }

// Lookup reads the named variable from the process environment.
func Lookup(name string) Value { return lookup(name) }

// IsSet reports whether the variable was present, even if empty.
func (v Value) IsSet() bool { return v.set }

// Raw returns the value exactly as received. Empty when unset.
func (v Value) Raw() string { return v.raw }

// WellFormed reports whether the value can be interpreted as text on a
// platform that requires it. Unset values are well-formed.
func (v Value) WellFormed() bool { return !v.malformed }

// Equal compares presence and bytes.
func (v Value) Equal(o Value) bool { return v.set == o.set && v.raw == o.raw }

// Lossy returns a printable form, replacing invalid UTF-8 with U+FFFD.
func (v Value) Lossy() string { return strings.ToValidUTF8(v.raw, "\uFFFD") }

// String implements fmt.Stringer using the lossy form.
func (v Value) String() string { return v.Lossy() }
