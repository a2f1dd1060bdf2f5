package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/padlint/padlint/internal/rules"
)

const unpadded = "test('a', () => {});\ntest('b', () => {});\n"
const padded = "test('a', () => {});\n\ntest('b', () => {});\n"

func testEntries(t *testing.T, names ...string) []rules.Entry {
	t.Helper()
	entries, err := resolveRules(names)
	if err != nil {
		t.Fatal(err)
	}
	return entries
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runOpts(t *testing.T, opts *Options) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	opts.Stdout = &stdout
	opts.Stderr = &stderr
	if len(opts.RuleNames) == 0 {
		opts.RuleNames = []string{"padding-around-all"}
	}
	code := Run(opts)
	return code, stdout.String(), stderr.String()
}

func TestCheck(t *testing.T) {
	diags, fixed := Check("test.js", unpadded, testEntries(t, "padding-around-test-blocks"))
	if len(diags) != 1 {
		t.Fatalf("diags = %d, want 1", len(diags))
	}
	if diags[0].Line != 2 || diags[0].Col != 1 {
		t.Errorf("diag at %d:%d, want 2:1", diags[0].Line, diags[0].Col)
	}
	if fixed != padded {
		t.Errorf("fixed = %q, want %q", fixed, padded)
	}
}

func TestCheckCleanInput(t *testing.T) {
	diags, fixed := Check("test.js", padded, testEntries(t, "padding-around-test-blocks"))
	if len(diags) != 0 {
		t.Errorf("diags = %v, want none", diags)
	}
	if fixed != padded {
		t.Errorf("clean input modified: %q", fixed)
	}
}

func TestCheckFixConverges(t *testing.T) {
	// The same pair is reported by two configured rules; the duplicate
	// edits collapse to one inserted blank line.
	entries := testEntries(t, "padding-around-test-blocks", "padding-around-all")
	_, fixed := Check("test.js", unpadded, entries)
	if fixed != padded {
		t.Errorf("fixed = %q, want %q", fixed, padded)
	}
}

func TestRunDefaultMode(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.test.js", unpadded)

	code, stdout, _ := runOpts(t, &Options{Files: []string{path}})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d", code, ExitIssues)
	}
	if !strings.Contains(stdout, path+":2:1") {
		t.Errorf("missing location in output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Expected blank line before this statement.") {
		t.Errorf("missing message in output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "1 problem(s), 1 fixable with --fix") {
		t.Errorf("missing summary in output:\n%s", stdout)
	}
}

func TestRunCleanFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.test.js", padded)

	code, stdout, stderr := runOpts(t, &Options{Files: []string{path}})
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d (stderr: %s)", code, ExitOK, stderr)
	}
	if stdout != "" {
		t.Errorf("unexpected output:\n%s", stdout)
	}
}

func TestRunCheckMode(t *testing.T) {
	dir := t.TempDir()
	dirty := writeTestFile(t, dir, "dirty.test.js", unpadded)
	clean := writeTestFile(t, dir, "clean.test.js", padded)

	code, _, stderr := runOpts(t, &Options{Files: []string{dirty, clean}, Check: true})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d", code, ExitIssues)
	}
	if !strings.Contains(stderr, "dirty.test.js") {
		t.Errorf("dirty file not named:\n%s", stderr)
	}
	if strings.Contains(stderr, "clean.test.js") {
		t.Errorf("clean file named:\n%s", stderr)
	}

	// File contents are untouched in check mode.
	got, _ := os.ReadFile(dirty)
	if string(got) != unpadded {
		t.Errorf("check mode modified the file")
	}
}

func TestRunCheckModeQuiet(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.test.js", unpadded)

	code, stdout, stderr := runOpts(t, &Options{Files: []string{path}, Check: true, Quiet: true})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d", code, ExitIssues)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("quiet check produced output: %q %q", stdout, stderr)
	}
}

func TestRunFixMode(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.test.js", unpadded)

	code, _, stderr := runOpts(t, &Options{Files: []string{path}, Fix: true})
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d (stderr: %s)", code, ExitOK, stderr)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != padded {
		t.Errorf("fixed file = %q, want %q", got, padded)
	}

	// A second run finds nothing to do.
	code, _, _ = runOpts(t, &Options{Files: []string{path}, Check: true})
	if code != ExitOK {
		t.Errorf("post-fix check exit = %d, want %d", code, ExitOK)
	}
}

func TestRunDiffMode(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.test.js", unpadded)

	code, stdout, _ := runOpts(t, &Options{Files: []string{path}, Diff: true})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d", code, ExitIssues)
	}
	if !strings.Contains(stdout, "+++ b/"+path) {
		t.Errorf("missing diff header:\n%s", stdout)
	}
	if !strings.Contains(stdout, "+\n") {
		t.Errorf("missing inserted blank line:\n%s", stdout)
	}

	// Diff mode leaves the file alone.
	got, _ := os.ReadFile(path)
	if string(got) != unpadded {
		t.Errorf("diff mode modified the file")
	}
}

func TestRunMissingFile(t *testing.T) {
	code, _, stderr := runOpts(t, &Options{Files: []string{filepath.Join(t.TempDir(), "nope.js")}})
	if code != ExitError {
		t.Fatalf("exit = %d, want %d", code, ExitError)
	}
	if stderr == "" {
		t.Error("missing error output")
	}
}

func TestRunUnknownRule(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.test.js", padded)

	code, _, stderr := runOpts(t, &Options{
		Files:     []string{path},
		RuleNames: []string{"padding-around-nothing"},
	})
	if code != ExitError {
		t.Fatalf("exit = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr, "unknown rule") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "a.test.js", "expect(1);\nexpect(2);\nfoo();\n")
	cfgPath := writeTestFile(t, dir, "padlint.yml", "rules:\n  - padding-around-expect-groups\n")

	var stdout, stderr bytes.Buffer
	code := Run(&Options{
		Files:      []string{path},
		ConfigPath: cfgPath,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d (stderr: %s)", code, ExitIssues, stderr.String())
	}
	// Adjacent expects are fine under this rule; only foo() after the
	// group is flagged.
	if !strings.Contains(stdout.String(), "1 problem(s)") {
		t.Errorf("output:\n%s", stdout.String())
	}
}

func runStdinOpts(t *testing.T, input string, opts *Options) (int, string, string) {
	t.Helper()
	opts.Stdin = strings.NewReader(input)
	return runOpts(t, opts)
}

func TestRunStdinReport(t *testing.T) {
	code, stdout, stderr := runStdinOpts(t, unpadded, &Options{})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d (stderr: %s)", code, ExitIssues, stderr)
	}
	if !strings.Contains(stdout, "<stdin>:2:1: Expected blank line before this statement.") {
		t.Errorf("missing diagnostic:\n%s", stdout)
	}
	if !strings.Contains(stdout, "1 problem(s), 1 fixable with --fix") {
		t.Errorf("missing summary:\n%s", stdout)
	}

	code, stdout, _ = runStdinOpts(t, padded, &Options{})
	if code != ExitOK {
		t.Fatalf("clean input exit = %d, want %d", code, ExitOK)
	}
	if stdout != "" {
		t.Errorf("clean input produced output:\n%s", stdout)
	}
}

func TestRunStdinFix(t *testing.T) {
	code, stdout, _ := runStdinOpts(t, unpadded, &Options{Fix: true})
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if stdout != padded {
		t.Errorf("fixed output = %q, want %q", stdout, padded)
	}

	// Clean input passes through unchanged.
	code, stdout, _ = runStdinOpts(t, padded, &Options{Fix: true})
	if code != ExitOK || stdout != padded {
		t.Errorf("clean passthrough: exit=%d output=%q", code, stdout)
	}
}

func TestRunStdinDiff(t *testing.T) {
	code, stdout, _ := runStdinOpts(t, unpadded, &Options{Diff: true})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d", code, ExitIssues)
	}
	if !strings.Contains(stdout, "+++ b/<stdin>") {
		t.Errorf("missing diff header:\n%s", stdout)
	}
	if !strings.Contains(stdout, "+\n") {
		t.Errorf("missing inserted blank line:\n%s", stdout)
	}

	code, stdout, _ = runStdinOpts(t, padded, &Options{Diff: true})
	if code != ExitOK || stdout != "" {
		t.Errorf("clean diff: exit=%d output=%q", code, stdout)
	}
}

func TestRunStdinCheck(t *testing.T) {
	code, stdout, stderr := runStdinOpts(t, unpadded, &Options{Check: true})
	if code != ExitIssues {
		t.Fatalf("exit = %d, want %d", code, ExitIssues)
	}
	if stdout != "" || stderr != "" {
		t.Errorf("check mode produced output: %q %q", stdout, stderr)
	}

	code, _, _ = runStdinOpts(t, padded, &Options{Check: true})
	if code != ExitOK {
		t.Errorf("clean check exit = %d, want %d", code, ExitOK)
	}
}

func TestExcluded(t *testing.T) {
	patterns := []string{"node_modules", "*.min.js"}

	tests := []struct {
		path string
		want bool
	}{
		{"src/a.test.js", false},
		{"node_modules/lib/a.test.js", true},
		{"pkg/node_modules/a.test.js", true},
		{"dist/app.min.js", true},
		{"dist/app.js", false},
	}
	for _, tt := range tests {
		if got := excluded(tt.path, patterns); got != tt.want {
			t.Errorf("excluded(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRunSkipsExcludedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, filepath.Join("node_modules", "a.test.js"), unpadded)

	code, stdout, _ := runOpts(t, &Options{Files: []string{path}})
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d", code, ExitOK)
	}
	if stdout != "" {
		t.Errorf("excluded file produced output:\n%s", stdout)
	}
}
