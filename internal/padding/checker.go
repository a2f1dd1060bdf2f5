package padding

import (
	"github.com/padlint/padlint/internal/fix"
	"github.com/padlint/padlint/internal/parser"
	"github.com/padlint/padlint/internal/report"
)

// message is attached to every padding violation.
const message = "Expected blank line before this statement."

// Checker walks one file's statement tree against one rule table and
// reports violations. A Checker is single-use and owns its scope stack
// exclusively; run independent instances to process files in parallel.
type Checker struct {
	file   *parser.File
	rule   string
	table  Table
	scopes ScopeStack
	rep    report.Reporter
}

// NewChecker returns a checker for file using the named rule table.
func NewChecker(file *parser.File, rule string, table Table, rep report.Reporter) *Checker {
	return &Checker{file: file, rule: rule, table: table, rep: rep}
}

// Run traverses the file and reports every missing-padding violation.
func (c *Checker) Run() {
	c.walk(c.file.Root)
}

// walk drives the scope stack and statement checks in document order.
// Scope-introducing nodes are themselves verified as statements of the
// enclosing scope before their own scope opens.
func (c *Checker) walk(n *parser.Node) {
	switch n.Kind {
	case parser.KindProgram:
		c.scopes.Enter()
		c.walkBody(n)
		c.scopes.Exit()

	case parser.KindBlock, parser.KindSwitch:
		c.verify(n)
		c.scopes.Enter()
		c.walkBody(n)
		c.scopes.Exit()

	case parser.KindCase:
		// The clause is first checked as a statement of the switch
		// scope, then anchors its own body scope so the first body
		// statement is padded relative to the case label.
		c.verify(n)
		c.scopes.Enter()
		c.scopes.SetPrevious(n)
		c.walkBody(n)
		c.scopes.Exit()

	default:
		c.verify(n)
		c.walkBody(n)
		if n.Inner != nil {
			c.walk(n.Inner)
		}
	}
}

func (c *Checker) walkBody(n *parser.Node) {
	for _, child := range n.Body {
		c.walk(child)
	}
}

// verify checks n against the scope's previous statement, then records
// n as the new previous statement. The record is updated even when the
// parent check fails, mirroring the longstanding checker behavior of
// anchoring later comparisons to the most recently visited node.
func (c *Checker) verify(n *parser.Node) {
	if isValidParent(n.Parent) {
		if prev := c.scopes.Previous(); prev != nil {
			c.checkPair(prev, n)
		}
	}
	c.scopes.SetPrevious(n)
}

// isValidParent reports whether p is a statement container whose
// direct children participate in padding checks.
func isValidParent(p *parser.Node) bool {
	if p == nil {
		return false
	}
	switch p.Kind {
	case parser.KindProgram, parser.KindBlock, parser.KindSwitch, parser.KindCase:
		return true
	}
	return false
}

// checkPair resolves the policy for an adjacent pair and reports a
// violation when required padding is missing.
func (c *Checker) checkPair(prev, next *parser.Node) {
	if Resolve(c.file, prev, next, c.table) != PolicyAlways {
		return
	}
	if c.paddingBetween(prev, next) {
		return
	}

	anchor := c.file.FirstToken(next)
	edit := c.buildFix(prev, next)
	c.rep.Report(report.Diagnostic{
		Path:    c.file.Path,
		Line:    anchor.Line,
		Col:     anchor.Col + 1,
		Rule:    c.rule,
		Message: message,
		Fix:     &edit,
	})
}

// paddingBetween reports whether at least one blank line separates
// prev and next, measured over the actual token and comment sequence
// so comment lines never count as padding.
func (c *Checker) paddingBetween(prev, next *parser.Node) bool {
	last := c.file.LastToken(prev)
	for _, t := range c.file.Between(prev, next) {
		if t.Line-last.EndLine >= 2 {
			return true
		}
		last = t
	}
	return c.file.FirstToken(next).Line-last.EndLine >= 2
}

// buildFix computes the blank-line insertion for a violating pair.
// The reference token advances over every token still on the previous
// statement's closing line (trailing comments, closers of an enclosing
// statement) so those stay attached to it. A single newline completes
// the blank line when a line break already follows the insertion
// point; otherwise two are inserted.
func (c *Checker) buildFix(prev, next *parser.Node) fix.TextEdit {
	ref := c.file.LastToken(prev)

	anchor := c.file.FirstToken(next)
	for _, t := range c.file.Between(prev, next) {
		if t.Line == ref.EndLine {
			ref = t
			continue
		}
		anchor = t
		break
	}

	text := "\n"
	if anchor.Line == ref.EndLine {
		text = "\n\n"
	}
	return fix.Insert(ref.End, text)
}
