/*
Package category models category theory with Go generics: objects,
morphisms between them, composition and extensional equality of morphisms,
and generation of power objects (products, coproducts, exponentials)
together with the morphisms witnessing their universal properties.

# Overview

The package defines contracts, not categories. A concrete category (finite
sets, typed functions, shapes named by strings) supplies its own Object and
Morphism types and a PowerObjectGenerator; this package composes and
compares them generically.

# Objects

Any comparable type with Clone and String is an Object:

	type Name string

	func (n Name) Clone() Name    { return n }
	func (n Name) String() string { return string(n) }

Two objects are the same object of the category iff they compare equal.

# Morphisms

Morphism exposes Domain, Codomain and a pure Map. Arrow is a functional
binding so morphisms need no dedicated structs:

	f := cat.NewArrow(Name("Point"), Name("Line"), cat.Const[Name](Name("Line")))
	g := cat.NewArrow(Name("Line"), Name("Plane"), cat.Const[Name](Name("Plane")))

	cat.Compose(Name("Point"), f, g)  // "Plane"
	cat.CheckEqMorphisms(f, f)        // true
	gf := cat.Composite(f, g)         // g∘f as a single Arrow

Domain and codomain mismatches are compile errors, never runtime failures.

# Power Objects

A generator answers PowerObjectType requests over a sequence of objects:

	gen := cat.GeneratorCases[Name]{
	    ProductFunc: func(a, b Name) (Name, []cat.Morphism[Name, Name], error) {
	        ...
	    },
	}.Generator()

	p, projections, err := gen(cat.ProductOf(0, 1), []Name{"Point", "Line"})

Checked generators validate indices before running and reject results
whose witnesses have the wrong count or endpoints. All failures are
*PowerObjectError values wrapping one of the Err* sentinels.

# Concurrency

Every operation is a pure function of its arguments. Callers may share
objects, morphisms and generators across goroutines without locking as
long as their own Map functions are pure.

# Package Import

	import cat "github.com/Pure-Company/category"
*/
package category
