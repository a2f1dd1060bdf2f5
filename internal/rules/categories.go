// Package rules defines the named rule tables padlint ships with and
// the registry the CLI and config layers look them up in.
package rules

import "github.com/padlint/padlint/internal/padding"

// Statement categories for the jest-style test vocabulary. Matching is
// by identifier text only, so a shadowed local function with the same
// name still matches.
var (
	Any        = padding.Wildcard()
	AfterAll   = padding.CallTo("afterAll")
	AfterEach  = padding.CallTo("afterEach")
	BeforeAll  = padding.CallTo("beforeAll")
	BeforeEach = padding.CallTo("beforeEach")
	Describe   = padding.CallTo("describe", "fdescribe", "xdescribe")
	Expect     = padding.CallTo("expect")
	Test       = padding.CallTo("test", "it", "fit", "xit", "xtest")
	Hook       = padding.OneOf(AfterAll, AfterEach, BeforeAll, BeforeEach)
)
