package padding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padlint/padlint/internal/padding"
)

func TestResolveLastMatchWins(t *testing.T) {
	f := parseFile(t, "foo();\nbar();")
	prev, next := f.Root.Body[0], f.Root.Body[1]

	table := padding.Table{
		{Policy: padding.PolicyAlways, Prev: padding.Wildcard(), Next: padding.Wildcard()},
		{Policy: padding.PolicyAny, Prev: padding.Wildcard(), Next: padding.Wildcard()},
	}
	require.Equal(t, padding.PolicyAny, padding.Resolve(f, prev, next, table))

	table[0], table[1] = table[1], table[0]
	require.Equal(t, padding.PolicyAlways, padding.Resolve(f, prev, next, table))
}

func TestResolveSkipsNonMatching(t *testing.T) {
	f := parseFile(t, "expect(1);\nfoo();")
	prev, next := f.Root.Body[0], f.Root.Body[1]

	table := padding.Table{
		{Policy: padding.PolicyAlways, Prev: padding.CallTo("expect"), Next: padding.Wildcard()},
		{Policy: padding.PolicyAny, Prev: padding.CallTo("expect"), Next: padding.CallTo("expect")},
	}

	// The later rule does not match (next is not an expect call), so
	// the earlier one decides.
	require.Equal(t, padding.PolicyAlways, padding.Resolve(f, prev, next, table))
}

func TestResolveDefaultsToAny(t *testing.T) {
	f := parseFile(t, "foo();\nbar();")
	prev, next := f.Root.Body[0], f.Root.Body[1]

	require.Equal(t, padding.PolicyAny, padding.Resolve(f, prev, next, nil))

	table := padding.Table{
		{Policy: padding.PolicyAlways, Prev: padding.CallTo("describe"), Next: padding.Wildcard()},
	}
	require.Equal(t, padding.PolicyAny, padding.Resolve(f, prev, next, table))
}

func TestConcatPreservesOrder(t *testing.T) {
	a := padding.Table{{Policy: padding.PolicyAlways, Prev: padding.Wildcard(), Next: padding.Wildcard()}}
	b := padding.Table{{Policy: padding.PolicyAny, Prev: padding.Wildcard(), Next: padding.Wildcard()}}

	f := parseFile(t, "foo();\nbar();")
	prev, next := f.Root.Body[0], f.Root.Body[1]

	// b is appended after a, so it overrides.
	require.Equal(t, padding.PolicyAny, padding.Resolve(f, prev, next, padding.Concat(a, b)))
	require.Equal(t, padding.PolicyAlways, padding.Resolve(f, prev, next, padding.Concat(b, a)))
}
