package padding

import "github.com/padlint/padlint/internal/parser"

// Policy is the padding requirement between an adjacent statement
// pair.
type Policy int

const (
	// PolicyAny places no constraint on the pair.
	PolicyAny Policy = iota
	// PolicyAlways requires at least one blank line between the pair.
	PolicyAlways
)

// String returns the policy's configuration spelling.
func (p Policy) String() string {
	if p == PolicyAlways {
		return "always"
	}
	return "any"
}

// Rule relates a previous-statement category and a next-statement
// category to a padding policy.
type Rule struct {
	Policy Policy
	Prev   Category
	Next   Category
}

// Table is an ordered rule list. Order is significant: later entries
// override earlier ones when both match a pair.
type Table []Rule

// Concat joins tables into one. Because resolution scans backward,
// appended tables take precedence over earlier ones.
func Concat(tables ...Table) Table {
	var out Table
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Resolve returns the policy of the last rule in the table matching
// the (prev, next) pair, or PolicyAny when none matches.
func Resolve(f *parser.File, prev, next *parser.Node, table Table) Policy {
	for i := len(table) - 1; i >= 0; i-- {
		r := table[i]
		if r.Prev.Matches(f, prev) && r.Next.Matches(f, next) {
			return r.Policy
		}
	}
	return PolicyAny
}
