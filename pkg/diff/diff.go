// Package diff produces unified diffs between two versions of a text.
package diff

import (
	"fmt"
	"strings"
)

// context is the number of unchanged lines shown around each hunk.
const context = 3

type opKind int

const (
	opKeep opKind = iota
	opDelete
	opInsert
)

// op is one line-level operation of the edit script.
type op struct {
	kind opKind
	text string
}

// Unified renders the differences between before and after as a
// unified diff labeled with filename. It returns "" when the inputs
// are identical.
func Unified(filename, before, after string) string {
	if before == after {
		return ""
	}

	ops := script(lines(before), lines(after))
	hunks := group(ops)
	if len(hunks) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", filename)
	fmt.Fprintf(&b, "+++ b/%s\n", filename)
	for _, h := range hunks {
		h.render(&b)
	}
	return b.String()
}

// lines splits text into lines without their newline bytes.
func lines(s string) []string {
	if s == "" {
		return nil
	}
	out := strings.Split(s, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// script computes a line-level edit script. Common prefix and suffix
// are peeled off first; the remainder is aligned with a longest common
// subsequence table.
func script(a, b []string) []op {
	pre := 0
	for pre < len(a) && pre < len(b) && a[pre] == b[pre] {
		pre++
	}
	suf := 0
	for suf < len(a)-pre && suf < len(b)-pre && a[len(a)-1-suf] == b[len(b)-1-suf] {
		suf++
	}

	var ops []op
	for _, line := range a[:pre] {
		ops = append(ops, op{opKeep, line})
	}
	ops = append(ops, align(a[pre:len(a)-suf], b[pre:len(b)-suf])...)
	for _, line := range a[len(a)-suf:] {
		ops = append(ops, op{opKeep, line})
	}
	return ops
}

// align produces the edit script for two fully differing slices using
// an LCS length table walked back from the corner.
func align(a, b []string) []op {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var ops []op
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			ops = append(ops, op{opKeep, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, op{opDelete, a[i]})
			i++
		default:
			ops = append(ops, op{opInsert, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		ops = append(ops, op{opDelete, a[i]})
	}
	for ; j < m; j++ {
		ops = append(ops, op{opInsert, b[j]})
	}
	return ops
}

// hunk is a contiguous run of ops with its starting line numbers.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	ops                []op
}

// group splits an edit script into hunks separated by more than
// 2*context unchanged lines.
func group(ops []op) []hunk {
	var hunks []hunk
	oldLine, newLine := 1, 1
	i := 0

	for i < len(ops) {
		// Skip to the next change.
		for i < len(ops) && ops[i].kind == opKeep {
			oldLine++
			newLine++
			i++
		}
		if i == len(ops) {
			break
		}

		// Back up for leading context.
		lead := min(context, i-keepRunStart(ops, i))
		start := i - lead
		h := hunk{
			oldStart: oldLine - lead,
			newStart: newLine - lead,
		}

		// Extend through changes, absorbing gaps of unchanged lines
		// up to twice the context width.
		end := start
		keeps := 0
		for j := start; j < len(ops); j++ {
			if ops[j].kind == opKeep {
				keeps++
				if keeps > 2*context {
					break
				}
			} else {
				keeps = 0
				end = j + 1
			}
		}

		// Trailing context.
		tail := end
		for k := 0; k < context && tail < len(ops) && ops[tail].kind == opKeep; k++ {
			tail++
		}

		h.ops = ops[start:tail]
		for _, o := range h.ops {
			switch o.kind {
			case opKeep:
				h.oldCount++
				h.newCount++
			case opDelete:
				h.oldCount++
			case opInsert:
				h.newCount++
			}
		}
		hunks = append(hunks, h)

		// Advance line counters past the consumed ops.
		for j := i; j < tail; j++ {
			switch ops[j].kind {
			case opKeep:
				oldLine++
				newLine++
			case opDelete:
				oldLine++
			case opInsert:
				newLine++
			}
		}
		i = tail
	}
	return hunks
}

// keepRunStart returns the index where the run of unchanged lines
// immediately before i begins, bounding how far leading context can
// reach back.
func keepRunStart(ops []op, i int) int {
	run := 0
	for j := i - 1; j >= 0 && ops[j].kind == opKeep; j-- {
		run++
	}
	return i - run
}

func (h *hunk) render(b *strings.Builder) {
	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", h.oldStart, h.oldCount, h.newStart, h.newCount)
	for _, o := range h.ops {
		switch o.kind {
		case opKeep:
			fmt.Fprintf(b, " %s\n", o.text)
		case opDelete:
			fmt.Fprintf(b, "-%s\n", o.text)
		case opInsert:
			fmt.Fprintf(b, "+%s\n", o.text)
		}
	}
}
