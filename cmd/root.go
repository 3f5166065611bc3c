// Package cmd implements the command-line interface for pod-query.
// The root command loads pod records, filters them by the given criteria,
// exports the survivors and prints their names.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/verbose"
)

var exitFunc = os.Exit
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "pod-query",
	Short: "Query the CocoaPods dependencies of a project",
	Long: `Load the pods a CocoaPods project resolved (or a cached snapshot of them),
keep those matching every given criterion, and print or export the result.

String criteria match exactly unless --substring is given, and are
case-sensitive unless --case-insensitive is given.`,
	Example: `  pod-query --name=B
  pod-query --source-file=e.pbobjc.h --substring --case-insensitive
  pod-query --swift --to-json=swift-pods.json --silent
  pod-query --cache=pods.yaml --no-local --long`,
	Args:          usageArgs(cobra.NoArgs),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	RunE: runQuery,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success, whether or not any pod matched
//   - 2: IO, cache or backend failure
//   - 3: Configuration or flag error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		errors.PrintErrorWithHints(os.Stderr, err, verbose.IsEnabled())
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output on stderr")

	registerQueryFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewExitError(errors.ExitConfigError, err)
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
}

// usageArgs maps positional argument errors to the configuration exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return errors.NewExitError(errors.ExitConfigError, err)
		}
		return nil
	}
}
