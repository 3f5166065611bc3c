package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajxudir/podquery/pkg/snapshot"
	"github.com/ajxudir/podquery/pkg/verbose"
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Rewrite a snapshot in another format",
	Long: `Read the pod records in SRC and write them to DST. The format of each
file follows its extension: .json is JSON, anything else is YAML, and a
trailing .xz adds xz compression.`,
	Example: `  pod-query convert pods.yaml pods.json
  pod-query convert pods.json pods.yaml.xz`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: runConvert,
}

// runConvert reads a snapshot and writes it back in DST's format.
//
// Returns:
//   - error: IOError or MalformedCacheError from reading, IOError from writing
func runConvert(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]
	p := verbose.Start()

	records, err := snapshot.ReadFile(src)
	if err != nil {
		return err
	}
	if err := snapshot.WriteFile(dst, records); err != nil {
		return err
	}
	p.Done("Converted %d pods from %s to %s", len(records), src, dst)
	return nil
}
