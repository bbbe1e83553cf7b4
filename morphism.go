package category

import "fmt"

// ============================================================================
// Morphism Contract
// ============================================================================

// Morphism is a typed map from a domain object to a codomain object.
//
// Map must be pure and deterministic: value-equal inputs produce equal
// outputs. Composition and CheckEqMorphisms rely on it. Feeding Map a value
// inconsistent with Domain is undefined with respect to the category laws.
type Morphism[A Object[A], B Object[B]] interface {
	Domain() A
	Codomain() B
	Map(x A) B
}

// HomSet is the ordered collection of known morphisms from A to B.
// Duplicates, including extensionally equal morphisms, may coexist.
type HomSet[A Object[A], B Object[B]] []Morphism[A, B]

// Contains reports whether the set holds a morphism equal to m under
// CheckEqMorphisms.
func (h HomSet[A, B]) Contains(m Morphism[A, B]) bool {
	for _, existing := range h {
		if CheckEqMorphisms(existing, m) {
			return true
		}
	}
	return false
}

// Unique returns the set with extensionally equal morphisms removed,
// keeping the first occurrence of each.
func (h HomSet[A, B]) Unique() HomSet[A, B] {
	out := make(HomSet[A, B], 0, len(h))
	for _, m := range h {
		if !out.Contains(m) {
			out = append(out, m)
		}
	}
	return out
}

// ============================================================================
// Free Operations
// ============================================================================

// CheckEqMorphisms compares two morphisms by their endpoints and behavior.
//
// They are equal iff their domains are equal, their codomains are equal and
// each maps its own domain to the same result. The behavioral check probes a
// single point, which is sufficient because a domain is one object value.
func CheckEqMorphisms[A Object[A], B Object[B]](first, second Morphism[A, B]) bool {
	return first.Domain() == second.Domain() &&
		first.Codomain() == second.Codomain() &&
		first.Map(first.Domain()) == second.Map(second.Domain())
}

// Compose applies first, then second, to x: (second ∘ first)(x).
func Compose[A Object[A], B Object[B], C Object[C]](x A, first Morphism[A, B], second Morphism[B, C]) C {
	return second.Map(first.Map(x))
}

// Composite returns second ∘ first as a single morphism from first's domain
// to second's codomain.
func Composite[A Object[A], B Object[B], C Object[C]](first Morphism[A, B], second Morphism[B, C]) Arrow[A, C] {
	return Arrow[A, C]{
		From: first.Domain(),
		To:   second.Codomain(),
		Fn: func(x A) C {
			return Compose(x, first, second)
		},
	}
}

// IsMonic reports whether f is left-cancellable over the given probes:
// f∘g₁ = f∘g₂ implies g₁ = g₂ for every pair of probes landing in f's
// domain. Probes with another codomain are ignored.
func IsMonic[Z Object[Z], A Object[A], B Object[B]](f Morphism[A, B], probes HomSet[Z, A]) bool {
	for i, g1 := range probes {
		if g1.Codomain() != f.Domain() {
			continue
		}
		for _, g2 := range probes[i+1:] {
			if g2.Codomain() != f.Domain() {
				continue
			}
			fg1 := Composite[Z, A, B](g1, f)
			fg2 := Composite[Z, A, B](g2, f)
			if CheckEqMorphisms[Z, B](fg1, fg2) && !CheckEqMorphisms(g1, g2) {
				return false
			}
		}
	}
	return true
}

// IsEpic is the dual of IsMonic: g₁∘f = g₂∘f implies g₁ = g₂ for every
// pair of probes leaving f's codomain.
func IsEpic[A Object[A], B Object[B], Z Object[Z]](f Morphism[A, B], probes HomSet[B, Z]) bool {
	for i, g1 := range probes {
		if g1.Domain() != f.Codomain() {
			continue
		}
		for _, g2 := range probes[i+1:] {
			if g2.Domain() != f.Codomain() {
				continue
			}
			g1f := Composite[A, B, Z](f, g1)
			g2f := Composite[A, B, Z](f, g2)
			if CheckEqMorphisms[A, Z](g1f, g2f) && !CheckEqMorphisms(g1, g2) {
				return false
			}
		}
	}
	return true
}

// IsTerminal reports whether t is terminal with respect to sources: every
// source has exactly one morphism into t, up to CheckEqMorphisms, among the
// given candidates. Candidates landing elsewhere are ignored.
func IsTerminal[A Object[A], T Object[T]](t T, sources []A, into HomSet[A, T]) bool {
	bySource := make(map[A]HomSet[A, T], len(sources))
	for _, m := range into {
		if m.Codomain() != t {
			continue
		}
		bySource[m.Domain()] = append(bySource[m.Domain()], m)
	}
	for _, src := range sources {
		if len(bySource[src].Unique()) != 1 {
			return false
		}
	}
	return true
}

// ============================================================================
// Functional Bindings
// ============================================================================

// MapFunc is the mapping behavior of a morphism as a plain function.
//
// Example:
//
//	upper := MapFunc[Name, Name](func(n Name) Name {
//	    return Name(strings.ToUpper(string(n)))
//	})
type MapFunc[A, B any] func(x A) B

// Map applies the function.
func (f MapFunc[A, B]) Map(x A) B {
	return f(x)
}

// Then returns a mapping that applies f, then next.
func (f MapFunc[A, B]) Then(next MapFunc[B, B]) MapFunc[A, B] {
	return Then(f, next)
}

// Then returns the mapping x ↦ g(f(x)). It is the MapFunc counterpart of
// Composite for when the result type changes.
func Then[A, B, C any](f MapFunc[A, B], g MapFunc[B, C]) MapFunc[A, C] {
	return func(x A) C {
		return g(f(x))
	}
}

// Const returns a mapping that ignores its input and yields a clone of b.
func Const[A any, B Object[B]](b B) MapFunc[A, B] {
	return func(A) B {
		return b.Clone()
	}
}

// Arrow is a functional binding for Morphism. It pairs explicit endpoints
// with a MapFunc, so tests and concrete categories need no morphism structs.
//
// Example:
//
//	f := NewArrow(Name("Point"), Name("Line"), Const[Name](Name("Line")))
//	f.Map(Name("Point")) // "Line"
type Arrow[A Object[A], B Object[B]] struct {
	From A
	To   B
	Fn   MapFunc[A, B]
}

// NewArrow builds an Arrow from its endpoints and mapping.
func NewArrow[A Object[A], B Object[B]](from A, to B, fn MapFunc[A, B]) Arrow[A, B] {
	return Arrow[A, B]{From: from, To: to, Fn: fn}
}

// Domain implements Morphism.
func (a Arrow[A, B]) Domain() A {
	return a.From
}

// Codomain implements Morphism.
func (a Arrow[A, B]) Codomain() B {
	return a.To
}

// Map implements Morphism.
func (a Arrow[A, B]) Map(x A) B {
	return a.Fn(x)
}

// String renders the arrow as "From -> To".
func (a Arrow[A, B]) String() string {
	return fmt.Sprintf("%s -> %s", a.From, a.To)
}

// Identity returns id_a, which maps every value to a clone of itself.
func Identity[A Object[A]](a A) Arrow[A, A] {
	return Arrow[A, A]{
		From: a,
		To:   a,
		Fn: func(x A) A {
			return x.Clone()
		},
	}
}
