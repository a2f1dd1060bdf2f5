// Package padding decides whether blank-line padding must separate
// adjacent statements, reports violations, and computes the minimal
// comment-aware edit that inserts the missing blank line.
package padding

import (
	"slices"

	"github.com/padlint/padlint/internal/lexer"
	"github.com/padlint/padlint/internal/parser"
)

type categoryKind int

const (
	matchAny categoryKind = iota
	matchCall
	matchOneOf
)

// Category identifies a recognizable statement shape. The zero value
// is the wildcard, matching any statement.
type Category struct {
	kind  categoryKind
	names []string
	parts []Category
}

// Wildcard returns the category matching every statement.
func Wildcard() Category {
	return Category{kind: matchAny}
}

// CallTo returns a category matching an expression statement whose
// first token is an identifier with one of the given names. The test
// is purely syntactic; it does not resolve the identifier.
func CallTo(names ...string) Category {
	return Category{kind: matchCall, names: names}
}

// OneOf returns a category matching when any member matches.
func OneOf(parts ...Category) Category {
	return Category{kind: matchOneOf, parts: parts}
}

// Matches reports whether n belongs to the category. Labeled-statement
// wrappers are unwrapped once, up front, so composite members all test
// the same inner node.
func (c Category) Matches(f *parser.File, n *parser.Node) bool {
	return c.matches(f, unwrapLabels(n))
}

func (c Category) matches(f *parser.File, n *parser.Node) bool {
	switch c.kind {
	case matchAny:
		return true
	case matchOneOf:
		for _, part := range c.parts {
			if part.matches(f, n) {
				return true
			}
		}
		return false
	default:
		if n == nil || n.Kind != parser.KindExpr {
			return false
		}
		tok := f.FirstToken(n)
		return tok.Kind == lexer.KindIdent && slices.Contains(c.names, tok.Text)
	}
}

// unwrapLabels follows label wrappers to the innermost labeled
// statement.
func unwrapLabels(n *parser.Node) *parser.Node {
	for n != nil && n.Kind == parser.KindLabeled {
		n = n.Inner
	}
	return n
}
