package rules

import (
	"fmt"
	"sort"

	"github.com/padlint/padlint/internal/padding"
)

// Entry is one registered rule: a name bound to a rule table.
type Entry struct {
	Name        string
	Description string
	Table       padding.Table

	// Deprecated entries remain usable; ReplacedBy names the rule to
	// migrate to.
	Deprecated bool
	ReplacedBy string
}

var registry = map[string]Entry{}

// Register adds an entry to the registry. Registering a duplicate name
// panics; rule names are a fixed, program-defined set.
func Register(e Entry) {
	if _, ok := registry[e.Name]; ok {
		panic(fmt.Sprintf("rules: duplicate rule name %q", e.Name))
	}
	registry[e.Name] = e
}

// Lookup returns the entry for name.
func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown rule %q", name)
	}
	return e, nil
}

// All returns every registered entry sorted by name.
func All() []Entry {
	out := make([]Entry, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
