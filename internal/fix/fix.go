// Package fix provides text-edit descriptors and their application to
// source text.
package fix

import "sort"

// TextEdit replaces the byte range [Start, End) with NewText. An edit
// with Start == End is a pure insertion.
type TextEdit struct {
	Start   int
	End     int
	NewText string
}

// Insert returns an edit inserting text at offset.
func Insert(offset int, text string) TextEdit {
	return TextEdit{Start: offset, End: offset, NewText: text}
}

// Apply rewrites src with the given edits. Edits are applied in offset
// order; an edit overlapping an already applied one, or duplicating an
// insertion at the same offset, is skipped. Callers that may produce
// conflicting edits re-run the check on the result until it is clean.
func Apply(src string, edits []TextEdit) string {
	if len(edits) == 0 {
		return src
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	var out []byte
	pos := 0
	lastInsert := -1

	for _, e := range sorted {
		if e.Start < pos || e.Start > len(src) || e.End > len(src) {
			continue
		}
		if e.Start == e.End && e.Start == lastInsert {
			continue
		}
		out = append(out, src[pos:e.Start]...)
		out = append(out, e.NewText...)
		pos = e.End
		if e.Start == e.End {
			lastInsert = e.Start
		}
	}

	out = append(out, src[pos:]...)
	return string(out)
}
