package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkinmodi/add-license-header/internal/config"
	"github.com/arkinmodi/add-license-header/internal/header"
	"github.com/arkinmodi/add-license-header/internal/repo"
)

// Version is the current version of add-license-header, set at build time.
var Version = "dev"

const InitCmdName = "init"

var LongDescription = `
add-license-header inserts, updates, or verifies a license header comment
block at the top of source files. It is built to run as a pre-commit hook:
pass it the staged file names and a license template, and it will wrap the
template in each file's comment syntax and keep the resulting header block
up to date on every run.

Headers are marked with a sentinel line so later runs can find and rewrite
them no matter how the template changes. Templates may reference
$create_year, $edit_year, $year_delimiter and $author_name; the creation
year is read from git history when not given explicitly.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stderr io.Writer) *cobra.Command {
	var debug bool
	var configPath string

	var licenseText string
	var licenseFile string
	var authorName string
	var createYear string
	var editYear string
	var yearDelimiter string
	var singleYearIfSame bool
	var unmanaged bool
	var check bool
	var exitZero bool
	var exitZeroIfUnsupported bool
	var jobs int

	rootCmd := &cobra.Command{
		Use:           "add-license-header [flags] <file>...",
		Short:         "Insert, update, or verify license headers in source files",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Long:          LongDescription,
		Example: `
ADD OR UPDATE HEADERS
  add-license-header --license-file LICENSE.tmpl main.go cmd/serve.go
  add-license-header --license 'Copyright $create_year $author_name' --author-name 'Jane Doe' main.go

VERIFY HEADERS IN CI (no files are written)
  add-license-header --license-file LICENSE.tmpl --check $(git ls-files '*.go')

MAINTAIN HEADERS WITHOUT THE SENTINEL LINE
  add-license-header --license-file LICENSE.tmpl --unmanaged setup.py`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help, completion and init commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}

			logger, _, err := setupLogger(stderr, ll, debug)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			// 2. Build Dependencies
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			styles := header.NewRegistry()
			if cfg != nil {
				for key, s := range cfg.Styles {
					if rErr := styles.Register(key, header.BlockComment(s)); rErr != nil {
						return rErr
					}
				}
			}

			processor := header.NewProcessor(styles, repo.NewCLIGitter(), logger)

			// 3. Hydrate the Lazy Wrapper
			lazy.SetInner(NewCLIManager(logger, processor, styles, cfg))

			return nil
		},
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			cfg := lazy.Config()
			if cfg != nil {
				if authorName == "" {
					authorName = cfg.AuthorName
				}
				if yearDelimiter == "" {
					yearDelimiter = cfg.YearDelimiter
				}
				if !cmd.Flags().Changed("single-year-if-same") {
					singleYearIfSame = cfg.SingleYearIfSame
				}
				if !cmd.Flags().Changed("unmanaged") {
					unmanaged = cfg.Unmanaged
				}
			}

			tmpl, err := resolveTemplate(licenseText, licenseFile, cfg)
			if err != nil {
				return err
			}

			job := header.Job{
				Template: tmpl,
				Values: header.Values{
					CreateYear:    createYear,
					EditYear:      editYear,
					YearDelimiter: yearDelimiter,
					AuthorName:    authorName,
				},
				SingleYearIfSame: singleYearIfSame,
				Unmanaged:        unmanaged,
				Check:            check,
			}

			outcomes := lazy.ProcessFiles(cmd.Context(), job, args, jobs)

			return report(cmd.ErrOrStderr(), outcomes, reportOptions{
				check:                 check,
				exitZero:              exitZero,
				exitZeroIfUnsupported: exitZeroIfUnsupported,
			})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config file (overrides discovery and "+config.ConfigEnvVar+")")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&licenseText, "license", "", "license template text")
	rootCmd.Flags().StringVar(&licenseFile, "license-file", "", "path to license template file")
	rootCmd.Flags().StringVar(&authorName, "author-name", "", "value for $author_name")
	rootCmd.Flags().StringVar(&createYear, "create-year", "",
		"value for $create_year (default: earliest year in the file's git history)")
	rootCmd.Flags().StringVar(&editYear, "edit-year", "", "value for $edit_year (default: current year)")
	rootCmd.Flags().StringVar(&yearDelimiter, "year-delimiter", "",
		`value for $year_delimiter (default: ", ")`)
	rootCmd.Flags().BoolVar(&singleYearIfSame, "single-year-if-same", false,
		"render a single year when the create and edit years are equal")
	rootCmd.Flags().BoolVar(&unmanaged, "unmanaged", false,
		"maintain the top-most comment block instead of a sentinel-marked header")
	rootCmd.Flags().BoolVar(&check, "check", false,
		"report files whose header is missing or out of date without writing")
	rootCmd.Flags().BoolVar(&exitZero, "exit-zero", false,
		"exit 0 even when files were updated")
	rootCmd.Flags().BoolVar(&exitZeroIfUnsupported, "exit-zero-if-unsupported", false,
		"do not fail on files with an unknown comment syntax")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "number of files to process concurrently")

	// Subcommands
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewStylesCmd(lazy))

	return rootCmd
}

// loadConfig loads the explicit config path if given, otherwise discovers
// one in the working directory. No config at all is fine.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		var found bool
		path, found = config.Discover(".", os.Getenv)
		if !found {
			return nil, nil
		}
	}
	return config.Load(path)
}

// resolveTemplate picks the license template: inline text, a template file,
// or the config's licenseFile, in that order of precedence.
func resolveTemplate(text, file string, cfg *config.Config) (*header.Template, error) {
	if text != "" && file != "" {
		return nil, &header.AmbiguousTemplateError{}
	}
	if text != "" {
		return header.Parse(text)
	}
	if file == "" && cfg != nil {
		file = cfg.ResolveLicenseFile()
	}
	if file == "" {
		return nil, &header.NoTemplateError{}
	}
	return header.Load(file)
}

type reportOptions struct {
	check                 bool
	exitZero              bool
	exitZeroIfUnsupported bool
}

// report prints per-file outcomes to stderr and folds them into the exit
// decision: any hard failure wins, otherwise changed files fail the run
// unless --exit-zero is set.
func report(w io.Writer, outcomes []Outcome, opts reportOptions) error {
	var changed, failed int

	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			fmt.Fprintf(w, "%v\n", o.Err)
			var unsupported *header.UnsupportedFileError
			if errors.As(o.Err, &unsupported) {
				fmt.Fprintln(w, "feel free to open an issue/pr at "+
					"https://github.com/arkinmodi/add-license-header to add support!")
				if opts.exitZeroIfUnsupported {
					continue
				}
			}
			failed++
		case o.Result.Changed():
			changed++
			if opts.check {
				fmt.Fprintf(w, "license header out of date in %s\n", o.Path)
			} else {
				fmt.Fprintf(w, "updating license in %s\n", o.Path)
			}
		}
	}

	if failed > 0 {
		return &ProcessingFailedError{Count: failed}
	}
	if changed > 0 && !opts.exitZero {
		if opts.check {
			return &HeadersOutOfDateError{Count: changed}
		}
		return &HeadersUpdatedError{Count: changed}
	}
	return nil
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
