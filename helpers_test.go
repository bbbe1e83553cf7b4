package category_test

import (
	"strings"

	cat "github.com/Pure-Company/category"
)

// name is the object type used across the tests: a shape named by a string.
type name string

func (n name) Clone() name    { return n }
func (n name) String() string { return string(n) }

type morphism = cat.Morphism[name, name]

func constArrow(from, to, out name) cat.Arrow[name, name] {
	return cat.NewArrow(from, to, cat.Const[name](out))
}

func mapArrow(from, to name, fn func(name) name) cat.Arrow[name, name] {
	return cat.NewArrow(from, to, cat.MapFunc[name, name](fn))
}

// shapes is a small category over names. A×B is rendered "A×B", A+B is
// "A+B" with tagged injections, and Bᴬ is "B^A". Composite operands are
// parenthesized, so (A×B)×C and A×(B×C) stay distinct.
func shapes() cat.GeneratorCases[name] {
	return cat.GeneratorCases[name]{
		ProductFunc: func(a, b name) (name, []morphism, error) {
			p := join(a, "×", b)
			return p, []morphism{
				mapArrow(p, a, first),
				mapArrow(p, b, second),
			}, nil
		},
		CoproductFunc: func(a, b name) (name, []morphism, error) {
			s := join(a, "+", b)
			return s, []morphism{
				mapArrow(a, s, func(x name) name { return "inl(" + x + ")" }),
				mapArrow(b, s, func(x name) name { return "inr(" + x + ")" }),
			}, nil
		},
		ExponentialFunc: func(a, b name) (name, []morphism, error) {
			e := join(b, "^", a)
			ev := mapArrow(join(e, "×", a), b, func(x name) name {
				base, _ := split(first(x), "^")
				return base
			})
			return e, []morphism{ev}, nil
		},
	}
}

func join(a name, op string, b name) name {
	return wrap(a) + name(op) + wrap(b)
}

func wrap(n name) name {
	if strings.ContainsAny(string(n), "×+^()") {
		return "(" + n + ")"
	}
	return n
}

func unwrap(n name) name {
	s := string(n)
	if !strings.HasPrefix(s, "(") {
		return n
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return n
			}
		}
	}
	return name(s[1 : len(s)-1])
}

// split cuts x at the first op outside parentheses.
func split(x name, op string) (name, name) {
	s := string(x)
	depth := 0
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth == 0 && strings.HasPrefix(s[i:], op):
			return unwrap(name(s[:i])), unwrap(name(s[i+len(op):]))
		}
	}
	return unwrap(x), ""
}

func first(x name) name {
	l, _ := split(x, "×")
	return l
}

func second(x name) name {
	_, r := split(x, "×")
	return r
}

// pairing is ⟨f,g⟩: Z → p for f: Z → A and g: Z → B.
func pairing(p name, f, g morphism) cat.Arrow[name, name] {
	return mapArrow(f.Domain(), p, func(z name) name {
		return join(f.Map(z), "×", g.Map(z))
	})
}
