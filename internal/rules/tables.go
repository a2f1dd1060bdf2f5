package rules

import "github.com/padlint/padlint/internal/padding"

// around requires a blank line on both sides of statements in cat.
func around(cat padding.Category) padding.Table {
	return padding.Table{
		{Policy: padding.PolicyAlways, Prev: Any, Next: cat},
		{Policy: padding.PolicyAlways, Prev: cat, Next: Any},
	}
}

// before requires a blank line only before statements in cat. Kept for
// the deprecated single-sided rule names.
func before(cat padding.Category) padding.Table {
	return padding.Table{
		{Policy: padding.PolicyAlways, Prev: Any, Next: cat},
	}
}

var (
	aroundAfterAll   = around(AfterAll)
	aroundAfterEach  = around(AfterEach)
	aroundBeforeAll  = around(BeforeAll)
	aroundBeforeEach = around(BeforeEach)
	aroundDescribe   = around(Describe)
	aroundTest       = around(Test)

	// aroundHook covers all four lifecycle hooks with one table.
	aroundHook = around(Hook)

	// Expect groups: padded from everything else, but consecutive
	// expect calls stay adjacent. The trailing any-policy entry wins
	// over the two before it for expect→expect pairs.
	aroundExpect = padding.Table{
		{Policy: padding.PolicyAlways, Prev: Any, Next: Expect},
		{Policy: padding.PolicyAlways, Prev: Expect, Next: Any},
		{Policy: padding.PolicyAny, Prev: Expect, Next: Expect},
	}

	// aroundAll is the concatenation of every per-category table;
	// backward resolution makes later tables override earlier ones.
	aroundAll = padding.Concat(
		aroundAfterAll,
		aroundAfterEach,
		aroundBeforeAll,
		aroundBeforeEach,
		aroundDescribe,
		aroundExpect,
		aroundTest,
	)
)
