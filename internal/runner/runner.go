// Package runner orchestrates the parse -> check -> fix/report
// pipeline over one or more files.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/padlint/padlint/internal/config"
	"github.com/padlint/padlint/internal/fix"
	"github.com/padlint/padlint/internal/padding"
	"github.com/padlint/padlint/internal/parser"
	"github.com/padlint/padlint/internal/report"
	"github.com/padlint/padlint/internal/rules"
	"github.com/padlint/padlint/pkg/diff"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitIssues = 1
	ExitError  = 2
)

// maxFixPasses bounds fix-and-recheck iterations. Each pass can only
// insert padding, so the loop converges; the cap guards malformed
// edits.
const maxFixPasses = 10

// Options configures the runner behavior.
type Options struct {
	Files      []string
	Fix        bool
	Check      bool
	Diff       bool
	ConfigPath string
	RuleNames  []string // Overrides the config file's rule list.
	Quiet      bool
	Verbose    bool
	Color      bool
	Jobs       int
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

// result holds the outcome of checking one file.
type result struct {
	path  string
	diags []report.Diagnostic
	input string
	fixed string
	err   error
}

// Run executes the check pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "padlint: %v\n", err)
		return ExitError
	}

	ruleNames := cfg.Rules
	if len(opts.RuleNames) > 0 {
		ruleNames = opts.RuleNames
	}
	entries, err := resolveRules(ruleNames)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "padlint: %v\n", err)
		return ExitError
	}

	// stdin mode: no files given.
	if len(opts.Files) == 0 {
		return runStdin(opts, entries)
	}

	files := excludeFiles(opts.Files, cfg.Exclude)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Each file is checked by an independent checker instance, so
	// files fan out freely; results are reported in input order.
	results := make([]result, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = checkFile(path, entries)
			return nil
		})
	}
	_ = g.Wait()

	exitCode := ExitOK
	printer := report.NewPrinter(opts.Stdout, opts.Color)
	total, fixable := 0, 0

	for _, res := range results {
		code := reportResult(opts, printer, res, &total, &fixable)
		if code > exitCode {
			exitCode = code
		}
	}

	if !opts.Check && !opts.Diff && !opts.Fix {
		printer.Summary(total, fixable)
	}
	return exitCode
}

func resolveRules(names []string) ([]rules.Entry, error) {
	entries := make([]rules.Entry, 0, len(names))
	for _, name := range names {
		e, err := rules.Lookup(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// excludeFiles drops paths matching any exclude pattern, tested
// against the slash path, its base name, and every path element.
func excludeFiles(files, patterns []string) []string {
	if len(patterns) == 0 {
		return files
	}
	out := make([]string, 0, len(files))
	for _, path := range files {
		if !excluded(path, patterns) {
			out = append(out, path)
		}
	}
	return out
}

func excluded(path string, patterns []string) bool {
	slash := filepath.ToSlash(path)
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, slash); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, filepath.Base(path)); ok {
			return true
		}
		for _, elem := range splitPath(slash) {
			if ok, _ := filepath.Match(pat, elem); ok {
				return true
			}
		}
	}
	return false
}

func splitPath(slash string) []string {
	var elems []string
	start := 0
	for i := 0; i <= len(slash); i++ {
		if i == len(slash) || slash[i] == '/' {
			if i > start {
				elems = append(elems, slash[start:i])
			}
			start = i + 1
		}
	}
	return elems
}

// Check lints src once with the given rule entries, reporting against
// the original text, and returns the diagnostics plus the fully fixed
// text.
func Check(path, src string, entries []rules.Entry) ([]report.Diagnostic, string) {
	diags := checkOnce(path, src, entries)

	fixed := src
	for pass := 0; pass < maxFixPasses; pass++ {
		var edits []fix.TextEdit
		var pending []report.Diagnostic
		if pass == 0 {
			pending = diags
		} else {
			pending = checkOnce(path, fixed, entries)
		}
		for _, d := range pending {
			if d.Fix != nil {
				edits = append(edits, *d.Fix)
			}
		}
		if len(edits) == 0 {
			break
		}
		fixed = fix.Apply(fixed, edits)
	}

	return diags, fixed
}

// checkOnce runs every rule table once over a fresh parse of src.
func checkOnce(path, src string, entries []rules.Entry) []report.Diagnostic {
	file := parser.Parse(path, src)
	collector := &report.Collector{}
	for _, e := range entries {
		padding.NewChecker(file, e.Name, e.Table, collector).Run()
	}
	return collector.Diagnostics
}

func checkFile(path string, entries []rules.Entry) result {
	src, err := os.ReadFile(path)
	if err != nil {
		return result{path: path, err: err}
	}
	input := string(src)
	diags, fixed := Check(path, input, entries)
	return result{path: path, diags: diags, input: input, fixed: fixed}
}

func reportResult(opts *Options, printer *report.Printer, res result, total, fixable *int) int {
	if res.err != nil {
		fmt.Fprintf(opts.Stderr, "padlint: %v\n", res.err)
		return ExitError
	}

	if opts.Verbose {
		fmt.Fprintf(opts.Stderr, "%s\n", res.path)
	}

	switch {
	case opts.Check:
		if len(res.diags) > 0 {
			if !opts.Quiet {
				fmt.Fprintf(opts.Stderr, "%s\n", res.path)
			}
			return ExitIssues
		}
		return ExitOK

	case opts.Diff:
		if d := diff.Unified(res.path, res.input, res.fixed); d != "" {
			fmt.Fprint(opts.Stdout, d)
			return ExitIssues
		}
		return ExitOK

	case opts.Fix:
		if res.fixed == res.input {
			return ExitOK
		}
		if err := os.WriteFile(res.path, []byte(res.fixed), 0o644); err != nil {
			fmt.Fprintf(opts.Stderr, "padlint: writing %s: %v\n", res.path, err)
			return ExitError
		}
		return ExitOK

	default:
		for _, d := range res.diags {
			printer.Print(d)
			*total++
			if d.Fixable() {
				*fixable++
			}
		}
		if len(res.diags) > 0 {
			return ExitIssues
		}
		return ExitOK
	}
}

func runStdin(opts *Options, entries []rules.Entry) int {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "padlint: reading stdin: %v\n", err)
		return ExitError
	}

	input := string(src)
	diags, fixed := Check("<stdin>", input, entries)

	switch {
	case opts.Fix:
		fmt.Fprint(opts.Stdout, fixed)
		return ExitOK

	case opts.Diff:
		if d := diff.Unified("<stdin>", input, fixed); d != "" {
			fmt.Fprint(opts.Stdout, d)
			return ExitIssues
		}
		return ExitOK

	case opts.Check:
		if len(diags) > 0 {
			return ExitIssues
		}
		return ExitOK

	default:
		printer := report.NewPrinter(opts.Stdout, opts.Color)
		fixable := 0
		for _, d := range diags {
			printer.Print(d)
			if d.Fixable() {
				fixable++
			}
		}
		printer.Summary(len(diags), fixable)
		if len(diags) > 0 {
			return ExitIssues
		}
		return ExitOK
	}
}
