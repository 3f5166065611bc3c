package cmd

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/ajxudir/podquery/pkg/filtering"
	"github.com/ajxudir/podquery/pkg/testutil"
	"github.com/ajxudir/podquery/pkg/verbose"
)

// resetFlags restores every flag variable and Changed marker so that each
// test starts from a fresh command line.
func resetFlags() {
	queryNameFlag = ""
	queryVersionFlag = ""
	queryAuthorEmailFlag = ""
	queryAuthorNameFlag = ""
	querySummaryFlag = ""
	queryDescriptionFlag = ""
	querySourceFileFlag = ""
	querySwiftFlag = filtering.Unset
	queryLocalFlag = filtering.Unset
	queryCaseInsensitiveFlag = false
	querySubstringFlag = false
	queryToYAMLFlag = ""
	queryToJSONFlag = ""
	queryCacheFlag = ""
	queryProjectDirFlag = ""
	querySpecRepoFlag = nil
	queryConfigFlag = ""
	querySilentFlag = false
	queryLongFlag = false
	verboseFlag = false

	unmark := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.Flags().VisitAll(unmark)
	rootCmd.PersistentFlags().VisitAll(unmark)
	if help := rootCmd.Flags().Lookup("help"); help != nil {
		_ = help.Value.Set("false")
	}
	verbose.Disable()
}

// runCLI executes the root command with args and returns stdout and the error.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags()
	})

	rootCmd.SetArgs(args)
	var err error
	out := testutil.CaptureStdout(t, func() {
		err = ExecuteTest()
	})
	return out, err
}

// withCache prepends --cache pointing at the eight-pod fixture.
func withCache(args ...string) []string {
	return append([]string{"--cache", testutil.FixtureCachePath()}, args...)
}

// lines renders names the way PrintNames does.
func lines(names ...string) string {
	out := ""
	for _, n := range names {
		out += n + "\n"
	}
	return out
}
