// Package parser builds a statement-level syntax tree for a
// JavaScript/TypeScript subset. Expressions are not modeled; each
// statement records its token span, and any function bodies found
// inside it become nested block nodes so their statements can be
// checked in their own scope.
package parser

import "github.com/padlint/padlint/internal/lexer"

// Kind classifies a parsed node.
type Kind int

const (
	// KindProgram is the root node holding top-level statements.
	KindProgram Kind = iota
	// KindExpr is an expression statement.
	KindExpr
	// KindDecl is a declaration (var/let/const/function/class).
	KindDecl
	// KindBlock is a braced statement list, including function bodies.
	KindBlock
	// KindSwitch is a switch statement; its children are cases.
	KindSwitch
	// KindCase is a single case or default clause with its body.
	KindCase
	// KindLabeled wraps another statement behind a label.
	KindLabeled
	// KindOther covers remaining statements (if, for, return, ...).
	KindOther
)

//go:generate stringer -type=Kind

// Node is one parsed element of the statement tree. First and Last
// index into the file's token stream (the stream includes comments,
// but a node's span never starts or ends on one).
type Node struct {
	Kind   Kind
	Parent *Node
	// Body holds direct children: statements for program/block/case
	// nodes, case clauses for a switch, and nested function-body
	// blocks for other statement kinds.
	Body []*Node
	// Inner is the wrapped statement of a labeled statement.
	Inner *Node
	First int
	Last  int
}

// File bundles source text, its token stream, and the parsed tree, and
// answers the token-level queries the padding checker needs.
type File struct {
	Path   string
	Src    string
	Tokens []lexer.Token
	Root   *Node
}

// FirstToken returns the first token of n.
func (f *File) FirstToken(n *Node) lexer.Token {
	return f.Tokens[n.First]
}

// LastToken returns the last non-comment token of n.
func (f *File) LastToken(n *Node) lexer.Token {
	return f.Tokens[n.Last]
}

// Between returns the tokens strictly between a and b in stream order,
// comments included.
func (f *File) Between(a, b *Node) []lexer.Token {
	lo, hi := a.Last+1, b.First
	if lo >= hi {
		return nil
	}
	return f.Tokens[lo:hi]
}

// text returns the source text covered by n.
func (f *File) text(n *Node) string {
	return f.Src[f.Tokens[n.First].Start:f.Tokens[n.Last].End]
}
