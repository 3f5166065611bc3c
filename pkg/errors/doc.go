// Package errors provides the typed errors and exit codes for pod-query.
//
// Error kinds:
//   - IOError: a snapshot could not be read, or an export could not be written
//   - MalformedCacheError: a snapshot parsed but is not a list of records
//     (it unwraps to an IOError)
//   - BackendError: the live project could not be enumerated
//   - ValidationError: invalid configuration or flag combination
//   - ExitError: explicit exit code override
//
// Error Display:
//
//	errors.PrintErrorWithHints(os.Stderr, err, verbose)
//
// Exit Codes:
//   - ExitSuccess (0): The query ran, whether or not anything matched
//   - ExitFailure (2): IO, cache or backend failure
//   - ExitConfigError (3): Configuration or flag error
package errors
