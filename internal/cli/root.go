// Package cli provides the cobra command tree for padlint.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/padlint/padlint/internal/runner"
)

var (
	fixFlag     bool
	checkFlag   bool
	diffFlag    bool
	configFlag  string
	ruleFlags   []string
	quietFlag   bool
	verboseFlag bool
	noColorFlag bool
	jobsFlag    int
)

// exitCode carries the runner's exit status out of cobra's RunE.
var exitCode int

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "padlint [files...]",
		Short: "Blank-line padding checker for jest-style test files",
		Long: `Padlint checks that blank lines separate describe, test, hook, and
expect statements in JavaScript/TypeScript test files, and can rewrite
the files to insert the missing blank lines.

With no files, source is read from stdin and the result written to
stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &runner.Options{
				Files:      args,
				Fix:        fixFlag,
				Check:      checkFlag,
				Diff:       diffFlag,
				ConfigPath: configFlag,
				RuleNames:  ruleFlags,
				Quiet:      quietFlag,
				Verbose:    verboseFlag,
				Color:      useColor(),
				Jobs:       jobsFlag,
				Stdin:      cmd.InOrStdin(),
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			}
			exitCode = runner.Run(opts)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&fixFlag, "fix", "f", false, "rewrite files to insert missing blank lines")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "exit 1 if any file has violations, printing only file names")
	cmd.Flags().BoolVarP(&diffFlag, "diff", "d", false, "print unified diff of fixes instead of applying them")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to config file")
	cmd.Flags().StringArrayVarP(&ruleFlags, "rule", "r", nil, "rule to run (can be repeated; overrides config)")
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress informational output")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "print files as they are processed")
	cmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	cmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 0, "number of files to check in parallel (default: one per CPU)")

	return cmd
}

func useColor() bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return runner.ExitError
	}
	return exitCode
}
