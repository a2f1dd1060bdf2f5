// Package report defines lint diagnostics and their text rendering.
package report

import "github.com/padlint/padlint/internal/fix"

// Diagnostic is a single padding violation found in a file.
type Diagnostic struct {
	// Path is the file the violation was found in.
	Path string

	// Line and Col locate the anchor statement (1-indexed).
	Line int
	Col  int

	// Rule is the name of the rule table that produced the violation.
	Rule string

	// Message describes the violation.
	Message string

	// Fix, when set, inserts the missing padding.
	Fix *fix.TextEdit
}

// Fixable reports whether the diagnostic carries an auto-fix.
func (d *Diagnostic) Fixable() bool {
	return d.Fix != nil
}

// Reporter accepts diagnostics. Implementations only ever append;
// recorded diagnostics are never read back or removed by the checker.
type Reporter interface {
	Report(d Diagnostic)
}

// Collector is a Reporter that accumulates diagnostics in order.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Edits returns the fix edits of all fixable diagnostics, in report
// order.
func (c *Collector) Edits() []fix.TextEdit {
	var edits []fix.TextEdit
	for _, d := range c.Diagnostics {
		if d.Fix != nil {
			edits = append(edits, *d.Fix)
		}
	}
	return edits
}
