package errors

import (
	"fmt"
	"io"
)

// PrintErrorWithHints prints an error with an actionable hint to the writer.
//
// Validation errors are printed in their verbose form when verbose is set;
// everything else gets a hint lookup.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - err: The error to display; nil prints nothing
//   - verbose: If true, includes expected values for validation errors
//
// Output format:
//
//	Error: <error message>
//	  Hint: <actionable hint if available>
func PrintErrorWithHints(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if ve, ok := IsValidationError(err); ok {
		if verbose {
			_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.VerboseError())
		} else {
			_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.Error())
		}
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
}
