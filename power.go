package category

import "fmt"

// ============================================================================
// Power Object Requests
// ============================================================================

// PowerObjectKind selects the construction a generator must perform.
type PowerObjectKind int

const (
	// Product is A×B with projections π₁: A×B → A and π₂: A×B → B.
	Product PowerObjectKind = iota + 1
	// Coproduct is A+B with injections i₁: A → A+B and i₂: B → A+B.
	Coproduct
	// Exponential is Bᴬ with evaluation ev: Bᴬ×A → B.
	Exponential
)

func (k PowerObjectKind) String() string {
	switch k {
	case Product:
		return "Product"
	case Coproduct:
		return "Coproduct"
	case Exponential:
		return "Exponential"
	default:
		return fmt.Sprintf("PowerObjectKind(%d)", int(k))
	}
}

// WitnessCount is the exact number of morphisms witnessing the universal
// property of the kind, or 0 for an unknown kind.
func (k PowerObjectKind) WitnessCount() int {
	switch k {
	case Product, Coproduct:
		return 2
	case Exponential:
		return 1
	default:
		return 0
	}
}

// PowerObjectType is a request for a power object built from the objects at
// positions I and J of a caller-supplied sequence.
type PowerObjectType struct {
	Kind PowerObjectKind
	I, J int
}

// ProductOf requests objects[i] × objects[j].
func ProductOf(i, j int) PowerObjectType {
	return PowerObjectType{Kind: Product, I: i, J: j}
}

// CoproductOf requests objects[i] + objects[j].
func CoproductOf(i, j int) PowerObjectType {
	return PowerObjectType{Kind: Coproduct, I: i, J: j}
}

// ExponentialOf requests objects[j] ^ objects[i], the object of morphisms
// from objects[i] to objects[j].
func ExponentialOf(i, j int) PowerObjectType {
	return PowerObjectType{Kind: Exponential, I: i, J: j}
}

func (p PowerObjectType) String() string {
	return fmt.Sprintf("%s(%d, %d)", p.Kind, p.I, p.J)
}

// Validate checks the kind and that both indices address a sequence of n
// objects.
func (p PowerObjectType) Validate(n int) error {
	if p.Kind.WitnessCount() == 0 {
		return ErrUnknownKind
	}
	for _, idx := range []int{p.I, p.J} {
		if idx < 0 || idx >= n {
			return fmt.Errorf("%w: index %d with %d objects", ErrIndexOutOfRange, idx, n)
		}
	}
	return nil
}

// Resolve validates p against objects and returns the two operands,
// objects[p.I] and objects[p.J].
func Resolve[O any](p PowerObjectType, objects []O) (a, b O, err error) {
	if err := p.Validate(len(objects)); err != nil {
		return a, b, err
	}
	return objects[p.I], objects[p.J], nil
}

// ============================================================================
// Generator Contract
// ============================================================================

// PowerObjectGenerator builds power objects for a concrete category.
//
// For Product(i, j) it returns P and [π₁: P → objects[i], π₂: P → objects[j]].
// For Coproduct(i, j) it returns S and [i₁: objects[i] → S, i₂: objects[j] → S].
// For Exponential(i, j) it returns E and [ev: E×objects[i] → objects[j]],
// where the domain of ev is the category's own representation of the pair.
//
// Implementations must return an error rather than a malformed result.
type PowerObjectGenerator[O Object[O]] interface {
	GeneratePowerObject(powerType PowerObjectType, objects []O) (O, []Morphism[O, O], error)
}

// GeneratorFunc is a functional binding for PowerObjectGenerator.
//
// Example:
//
//	gen := GeneratorFunc[Name](func(pt PowerObjectType, objs []Name) (Name, []Morphism[Name, Name], error) {
//	    ...
//	}).Checked()
type GeneratorFunc[O Object[O]] func(powerType PowerObjectType, objects []O) (O, []Morphism[O, O], error)

// GeneratePowerObject implements PowerObjectGenerator.
func (f GeneratorFunc[O]) GeneratePowerObject(powerType PowerObjectType, objects []O) (O, []Morphism[O, O], error) {
	return f(powerType, objects)
}

// Checked wraps the generator so that indices are validated before it runs
// and its witnesses are validated after. Every failure is a
// *PowerObjectError, and no object or morphisms are returned with it.
//
// Checked is idempotent: wrapping a checked generator again only repeats the
// checks, it never changes the result.
func (f GeneratorFunc[O]) Checked() GeneratorFunc[O] {
	return func(pt PowerObjectType, objects []O) (O, []Morphism[O, O], error) {
		var zero O
		if err := pt.Validate(len(objects)); err != nil {
			return zero, nil, powerObjectError(pt, err)
		}
		obj, witnesses, err := f(pt, objects)
		if err != nil {
			return zero, nil, powerObjectError(pt, err)
		}
		if err := checkWitnesses(pt, objects, obj, witnesses); err != nil {
			return zero, nil, powerObjectError(pt, err)
		}
		return obj, witnesses, nil
	}
}

// GeneratePowerObject asks g for the requested power object and enforces the
// generator contract on the result. GeneratorCases already check their
// results and are called directly.
func GeneratePowerObject[O Object[O]](g PowerObjectGenerator[O], powerType PowerObjectType, objects []O) (O, []Morphism[O, O], error) {
	switch c := g.(type) {
	case GeneratorCases[O]:
		return c.Generator()(powerType, objects)
	case *GeneratorCases[O]:
		return c.Generator()(powerType, objects)
	}
	return GeneratorFunc[O](g.GeneratePowerObject).Checked()(powerType, objects)
}

// GeneratorCases builds a generator from one function per kind. Each
// function receives the two operands already resolved from the sequence.
// A nil case makes that kind unconstructible.
type GeneratorCases[O Object[O]] struct {
	ProductFunc     func(a, b O) (O, []Morphism[O, O], error)
	CoproductFunc   func(a, b O) (O, []Morphism[O, O], error)
	ExponentialFunc func(a, b O) (O, []Morphism[O, O], error)
}

// Generator returns the checked generator dispatching to the cases.
func (c GeneratorCases[O]) Generator() GeneratorFunc[O] {
	return GeneratorFunc[O](c.dispatch).Checked()
}

// GeneratePowerObject implements PowerObjectGenerator.
func (c GeneratorCases[O]) GeneratePowerObject(powerType PowerObjectType, objects []O) (O, []Morphism[O, O], error) {
	return c.Generator()(powerType, objects)
}

func (c GeneratorCases[O]) dispatch(pt PowerObjectType, objects []O) (O, []Morphism[O, O], error) {
	var build func(a, b O) (O, []Morphism[O, O], error)
	switch pt.Kind {
	case Product:
		build = c.ProductFunc
	case Coproduct:
		build = c.CoproductFunc
	case Exponential:
		build = c.ExponentialFunc
	}
	var zero O
	if build == nil {
		return zero, nil, ErrUnconstructible
	}
	a, b, err := Resolve(pt, objects)
	if err != nil {
		return zero, nil, err
	}
	return build(a, b)
}

// checkWitnesses verifies the count and endpoints of the returned morphisms.
// The domain of an evaluation map is category specific and is not checked.
// A witness that panics when asked for its endpoints, such as a typed nil
// pointer, is reported as ErrWitnessRole.
func checkWitnesses[O Object[O]](pt PowerObjectType, objects []O, obj O, witnesses []Morphism[O, O]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: endpoints unavailable: %v", ErrWitnessRole, r)
		}
	}()

	if want := pt.Kind.WitnessCount(); len(witnesses) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrWitnessCount, len(witnesses), want)
	}
	for n, m := range witnesses {
		if m == nil {
			return fmt.Errorf("%w: witness %d is nil", ErrWitnessRole, n)
		}
	}

	a, b, err := Resolve(pt, objects)
	if err != nil {
		return err
	}
	switch pt.Kind {
	case Product:
		if err := checkEndpoints(0, witnesses[0], obj, a); err != nil {
			return err
		}
		return checkEndpoints(1, witnesses[1], obj, b)
	case Coproduct:
		if err := checkEndpoints(0, witnesses[0], a, obj); err != nil {
			return err
		}
		return checkEndpoints(1, witnesses[1], b, obj)
	case Exponential:
		if got := witnesses[0].Codomain(); got != b {
			return fmt.Errorf("%w: evaluation lands in %s, want %s", ErrWitnessRole, got, b)
		}
	}
	return nil
}

func checkEndpoints[O Object[O]](n int, m Morphism[O, O], from, to O) error {
	if m.Domain() != from || m.Codomain() != to {
		return fmt.Errorf("%w: witness %d is %s -> %s, want %s -> %s",
			ErrWitnessRole, n, m.Domain(), m.Codomain(), from, to)
	}
	return nil
}
