package rules

func init() {
	Register(Entry{
		Name:        "padding-around-after-all-blocks",
		Description: "Require a blank line around afterAll blocks",
		Table:       aroundAfterAll,
	})
	Register(Entry{
		Name:        "padding-around-after-each-blocks",
		Description: "Require a blank line around afterEach blocks",
		Table:       aroundAfterEach,
	})
	Register(Entry{
		Name:        "padding-around-before-all-blocks",
		Description: "Require a blank line around beforeAll blocks",
		Table:       aroundBeforeAll,
	})
	Register(Entry{
		Name:        "padding-around-before-each-blocks",
		Description: "Require a blank line around beforeEach blocks",
		Table:       aroundBeforeEach,
	})
	Register(Entry{
		Name:        "padding-around-hook-blocks",
		Description: "Require a blank line around lifecycle hooks",
		Table:       aroundHook,
	})
	Register(Entry{
		Name:        "padding-around-describe-blocks",
		Description: "Require a blank line around describe blocks",
		Table:       aroundDescribe,
	})
	Register(Entry{
		Name:        "padding-around-expect-groups",
		Description: "Require a blank line around groups of expect calls",
		Table:       aroundExpect,
	})
	Register(Entry{
		Name:        "padding-around-test-blocks",
		Description: "Require a blank line around test and it blocks",
		Table:       aroundTest,
	})
	Register(Entry{
		Name:        "padding-around-all",
		Description: "All padding-around rules combined",
		Table:       aroundAll,
	})

	// Deprecated one-sided variants, retained so existing configs
	// keep loading.
	Register(Entry{
		Name:        "padding-before-after-all-blocks",
		Description: "Require a blank line before afterAll blocks",
		Table:       before(AfterAll),
		Deprecated:  true,
		ReplacedBy:  "padding-around-after-all-blocks",
	})
	Register(Entry{
		Name:        "padding-before-after-each-blocks",
		Description: "Require a blank line before afterEach blocks",
		Table:       before(AfterEach),
		Deprecated:  true,
		ReplacedBy:  "padding-around-after-each-blocks",
	})
	Register(Entry{
		Name:        "padding-before-before-all-blocks",
		Description: "Require a blank line before beforeAll blocks",
		Table:       before(BeforeAll),
		Deprecated:  true,
		ReplacedBy:  "padding-around-before-all-blocks",
	})
	Register(Entry{
		Name:        "padding-before-before-each-blocks",
		Description: "Require a blank line before beforeEach blocks",
		Table:       before(BeforeEach),
		Deprecated:  true,
		ReplacedBy:  "padding-around-before-each-blocks",
	})
	Register(Entry{
		Name:        "padding-before-describe-blocks",
		Description: "Require a blank line before describe blocks",
		Table:       before(Describe),
		Deprecated:  true,
		ReplacedBy:  "padding-around-describe-blocks",
	})
	Register(Entry{
		Name:        "padding-before-expect-statements",
		Description: "Require a blank line before expect statements",
		Table:       before(Expect),
		Deprecated:  true,
		ReplacedBy:  "padding-around-expect-groups",
	})
	Register(Entry{
		Name:        "padding-before-test-blocks",
		Description: "Require a blank line before test and it blocks",
		Table:       before(Test),
		Deprecated:  true,
		ReplacedBy:  "padding-around-test-blocks",
	})
}
