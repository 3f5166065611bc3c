package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/podquery/pkg/cocoapods"
	"github.com/ajxudir/podquery/pkg/config"
	"github.com/ajxudir/podquery/pkg/errors"
	"github.com/ajxudir/podquery/pkg/export"
	"github.com/ajxudir/podquery/pkg/filtering"
	"github.com/ajxudir/podquery/pkg/source"
	"github.com/ajxudir/podquery/pkg/verbose"
)

var (
	queryNameFlag        string
	queryVersionFlag     string
	queryAuthorEmailFlag string
	queryAuthorNameFlag  string
	querySummaryFlag     string
	queryDescriptionFlag string
	querySourceFileFlag  string
	querySwiftFlag       filtering.TriState
	queryLocalFlag       filtering.TriState

	queryCaseInsensitiveFlag bool
	querySubstringFlag       bool

	queryToYAMLFlag     string
	queryToJSONFlag     string
	queryCacheFlag      string
	queryProjectDirFlag string
	querySpecRepoFlag   []string
	queryConfigFlag     string
	querySilentFlag     bool
	queryLongFlag       bool
)

var (
	loadConfigFunc = config.LoadConfig
	newBackendFunc = func(projectDir string, specRepos []string) source.Backend {
		return cocoapods.NewSandbox(projectDir, specRepos)
	}
	newFilterFunc = func(criteria filtering.Criteria) filtering.RecordFilter {
		return &filtering.CriteriaFilter{Criteria: criteria}
	}
)

// registerQueryFlags adds the query flags as local flags of cmd.
func registerQueryFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.SortFlags = false

	fs.StringVar(&queryNameFlag, "name", "", "Match the pod name")
	fs.StringVar(&queryVersionFlag, "version", "", "Match the pod version")
	fs.StringVar(&queryAuthorEmailFlag, "author-email", "", "Match any author email")
	fs.StringVar(&queryAuthorNameFlag, "author-name", "", "Match any author name")
	fs.StringVar(&querySummaryFlag, "summary", "", "Match the summary")
	fs.StringVar(&queryDescriptionFlag, "description", "", "Match the description")
	fs.StringVar(&querySourceFileFlag, "source-file", "", "Match any source file path (pods without a file list always pass)")
	addTriStateFlag(fs, &querySwiftFlag, "swift", "Only pods that use Swift", "Only pods that do not use Swift")
	addTriStateFlag(fs, &queryLocalFlag, "local", "Only development (local path) pods", "Only pods fetched from a spec repo or remote source")

	fs.BoolVar(&queryCaseInsensitiveFlag, "case-insensitive", false, "Ignore case in every string criterion")
	fs.BoolVar(&querySubstringFlag, "substring", false, "Match every string criterion by containment")

	fs.StringVar(&queryToYAMLFlag, "to-yaml", "", "Write matching records to `FILE` as YAML (.xz compresses)")
	fs.StringVar(&queryToJSONFlag, "to-json", "", "Write matching records to `FILE` as JSON (.xz compresses)")
	fs.StringVar(&queryCacheFlag, "cache", "", "Read records from snapshot `FILE` instead of the project")
	fs.StringVarP(&queryProjectDirFlag, "project-directory", "d", "", "CocoaPods project root (default: working directory)")
	fs.StringArrayVar(&querySpecRepoFlag, "spec-repo", nil, "Spec repository root; repeatable (default: ~/.cocoapods/repos/*)")
	fs.StringVarP(&queryConfigFlag, "config", "c", "", "Config file path")
	fs.BoolVarP(&querySilentFlag, "silent", "s", false, "Do not print matching names")
	fs.BoolVarP(&queryLongFlag, "long", "l", false, "Print a table instead of names")
}

// queryOptions is the effective run configuration after flags override config.
type queryOptions struct {
	mode       filtering.MatchMode
	cache      string
	projectDir string
	specRepos  []string
}

// runQuery executes the root command: load, filter, export, print.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused; the command takes no positional arguments
//
// Returns:
//   - error: ValidationError for bad flags or config, IOError or
//     BackendError when records cannot be loaded or written
func runQuery(cmd *cobra.Command, args []string) error {
	if err := validateQueryFlags(); err != nil {
		return err
	}

	cfg, err := loadConfigFunc(queryConfigFlag, ".")
	if err != nil {
		return err
	}
	if cfg.Verbose {
		verbose.Enable()
	}

	opts := resolveQueryOptions(cmd, cfg)

	var backend source.Backend
	if opts.cache == "" {
		verbose.Debug("querying project", "dir", opts.projectDir)
		backend = newBackendFunc(opts.projectDir, opts.specRepos)
	}
	records, err := source.Load(opts.cache, backend)
	if err != nil {
		return err
	}

	criteria := buildCriteria(cmd, opts.mode)
	verbose.Debug("filtering", "criteria", criteria.Describe())
	matched := newFilterFunc(criteria).Filter(records)
	verbose.Infof("%d of %d pods matched", len(matched), len(records))

	if err := export.Export(matched, queryToYAMLFlag, queryToJSONFlag); err != nil {
		return err
	}

	if querySilentFlag {
		return nil
	}
	if queryLongFlag {
		return export.PrintTable(os.Stdout, matched)
	}
	return export.PrintNames(os.Stdout, matched)
}

// validateQueryFlags rejects flag combinations that cannot be honored.
func validateQueryFlags() error {
	if queryToYAMLFlag != "" && queryToYAMLFlag == queryToJSONFlag {
		return errors.NewFlagValidationError("--to-json", "same file as --to-yaml",
			"use different paths for the YAML and JSON exports")
	}
	if querySilentFlag && queryLongFlag {
		return errors.NewFlagValidationError("--long", "cannot be combined with --silent",
			"drop one of --silent or --long")
	}
	return nil
}

// resolveQueryOptions merges config values with the flags that were given.
func resolveQueryOptions(cmd *cobra.Command, cfg *config.Config) queryOptions {
	opts := queryOptions{
		mode: filtering.MatchMode{
			CaseInsensitive: boolOverride(cmd, "case-insensitive", queryCaseInsensitiveFlag, cfg.CaseInsensitive),
			Substring:       boolOverride(cmd, "substring", querySubstringFlag, cfg.Substring),
		},
		cache:      stringOverride(cmd, "cache", queryCacheFlag, cfg.Cache),
		projectDir: stringOverride(cmd, "project-directory", queryProjectDirFlag, cfg.ResolvedProjectDirectory()),
		specRepos:  cfg.SpecRepos,
	}
	if cmd.Flags().Changed("spec-repo") {
		opts.specRepos = querySpecRepoFlag
	}
	return opts
}

// buildCriteria collects the criteria given on the command line.
func buildCriteria(cmd *cobra.Command, mode filtering.MatchMode) filtering.Criteria {
	return filtering.Criteria{
		Name:        stringCriterion(cmd, "name", queryNameFlag),
		Version:     stringCriterion(cmd, "version", queryVersionFlag),
		AuthorName:  stringCriterion(cmd, "author-name", queryAuthorNameFlag),
		AuthorEmail: stringCriterion(cmd, "author-email", queryAuthorEmailFlag),
		Summary:     stringCriterion(cmd, "summary", querySummaryFlag),
		Description: stringCriterion(cmd, "description", queryDescriptionFlag),
		SourceFile:  stringCriterion(cmd, "source-file", querySourceFileFlag),
		Swift:       querySwiftFlag,
		Local:       queryLocalFlag,
		Mode:        mode,
	}
}
