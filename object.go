package category

import "fmt"

// Object is the capability set every category object type must satisfy.
//
// Duplication is Clone, structural equality is == (guaranteed by
// comparable) and the debug representation is String. Two objects are the
// same object of the category iff they compare equal.
//
// Object is a constraint, not a behavior provider: it is only ever used as
// a type parameter bound.
//
// Example:
//
//	type Name string
//
//	func (n Name) Clone() Name     { return n }
//	func (n Name) String() string  { return string(n) }
//
//	var _ = cat.SameObject(Name("Point"), Name("Point")) // true
type Object[O any] interface {
	comparable
	fmt.Stringer

	// Clone returns a copy of the object that shares no mutable state with
	// the receiver.
	Clone() O
}

// SameObject reports whether a and b are the same object of the category.
func SameObject[O Object[O]](a, b O) bool {
	return a == b
}
