// Package source produces the record list a query runs against.
//
// Records come either from a previously written snapshot or from a live
// Backend that enumerates the project's resolved pods. Backend results are
// deduplicated by root pod name and flattened into records by Project.
package source

import (
	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/record"
	"github.com/ajxudir/podquery/pkg/snapshot"
	"github.com/ajxudir/podquery/pkg/verbose"
)

// Backend enumerates resolved pods for a project.
//
// Implementations may return several targets sharing a RootName (one per
// subspec); Load keeps the first.
type Backend interface {
	// Targets returns the resolved pods in resolution order.
	//
	// Returns:
	//   - []Target: Resolved pods, subspecs included
	//   - error: When the project cannot be read
	Targets() ([]Target, error)
}

// BackendFunc adapts a plain function to Backend.
type BackendFunc func() ([]Target, error)

// Targets calls f.
func (f BackendFunc) Targets() ([]Target, error) { return f() }

// Load returns the records for a query run.
//
// When cachePath is non-empty the snapshot is read and the backend is not
// consulted. Otherwise the backend's targets are deduplicated by RootName,
// keeping the first occurrence and the original order, and projected.
//
// Parameters:
//   - cachePath: Snapshot to read, or "" to use the backend
//   - backend: Live pod source; may be nil when cachePath is set
//
// Returns:
//   - []record.Record: Records in source order
//   - error: *errors.IOError or *errors.MalformedCacheError for cache
//     failures, *errors.BackendError for backend failures
func Load(cachePath string, backend Backend) ([]record.Record, error) {
	progress := verbose.Start()

	if cachePath != "" {
		records, err := snapshot.ReadFile(cachePath)
		if err != nil {
			return nil, err
		}
		progress.Done("Loaded %d pods from cache %s", len(records), cachePath)
		return records, nil
	}

	if backend == nil {
		return nil, errors.NewBackendError("enumerate targets", errNoBackend)
	}

	targets, err := backend.Targets()
	if err != nil {
		if _, ok := errors.IsBackendError(err); ok {
			return nil, err
		}
		return nil, errors.NewBackendError("enumerate targets", err)
	}

	unique := Dedupe(targets)
	verbose.Debug("resolved targets", "total", len(targets), "unique", len(unique))

	records := make([]record.Record, 0, len(unique))
	for _, t := range unique {
		records = append(records, Project(t))
	}
	progress.Done("Loaded %d pods from project", len(records))
	return records, nil
}

// Dedupe keeps the first target for each RootName, preserving order.
//
// Parameters:
//   - targets: Targets possibly containing several subspecs of one pod
//
// Returns:
//   - []Target: One target per root pod
func Dedupe(targets []Target) []Target {
	seen := make(map[string]struct{}, len(targets))
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		key := t.Root()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
