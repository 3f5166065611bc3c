package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/podquery/pkg/filtering"
)

// triStateFlag is one half of a --x / --no-x pair sharing a single state.
//
// Both halves write the same *filtering.TriState, so whichever appears last
// on the command line wins. When neither is given the state stays Unset.
type triStateFlag struct {
	state *filtering.TriState
	sets  filtering.TriState
}

var _ pflag.Value = (*triStateFlag)(nil)

// String reports whether this half currently holds.
func (f *triStateFlag) String() string {
	if f.state == nil {
		return "false"
	}
	return strconv.FormatBool(*f.state == f.sets)
}

// Set applies the flag. "--swift=false" behaves like "--no-swift".
func (f *triStateFlag) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*f.state = filtering.TriStateOf(b == (f.sets == filtering.True))
	return nil
}

// Type returns "bool" so help output omits a value placeholder.
func (f *triStateFlag) Type() string {
	return "bool"
}

// addTriStateFlag registers --name and --no-name bound to state.
//
// Parameters:
//   - fs: Flag set to register on
//   - state: Shared tri-state both flags write
//   - name: Positive flag name, e.g. "swift"
//   - usage: Help text for the positive flag
//   - negUsage: Help text for the negated flag
func addTriStateFlag(fs *pflag.FlagSet, state *filtering.TriState, name, usage, negUsage string) {
	pos := fs.VarPF(&triStateFlag{state: state, sets: filtering.True}, name, "", usage)
	pos.NoOptDefVal = "true"
	neg := fs.VarPF(&triStateFlag{state: state, sets: filtering.False}, "no-"+name, "", negUsage)
	neg.NoOptDefVal = "true"
}

// stringCriterion returns a pointer to value when the flag was given, so an
// explicit empty string stays distinct from an absent criterion.
func stringCriterion(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// boolOverride returns the flag value when given, otherwise the fallback.
func boolOverride(cmd *cobra.Command, name string, flagValue, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return fallback
}

// stringOverride returns the flag value when given, otherwise the fallback.
func stringOverride(cmd *cobra.Command, name, flagValue, fallback string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return fallback
}
