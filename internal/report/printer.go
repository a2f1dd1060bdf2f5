package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	pathStyle    = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Printer renders diagnostics as text, one per line, with an optional
// closing summary.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a printer writing to w. With color disabled the
// output is plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Print writes one diagnostic.
func (p *Printer) Print(d Diagnostic) {
	loc := fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Col)
	rule := d.Rule
	if p.color {
		loc = pathStyle.Render(loc)
		rule = ruleStyle.Render(rule)
	}
	fmt.Fprintf(p.w, "%s: %s  [%s]\n", loc, d.Message, rule)
}

// Summary writes the closing problem count. Silent when total is zero.
func (p *Printer) Summary(total, fixable int) {
	if total == 0 {
		return
	}
	line := fmt.Sprintf("%d problem(s), %d fixable with --fix", total, fixable)
	if p.color {
		line = summaryStyle.Render(line)
	}
	fmt.Fprintf(p.w, "\n%s\n", line)
}
