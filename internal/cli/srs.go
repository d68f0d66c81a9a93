package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/backmassage/clipcondense/internal/config"
	"github.com/backmassage/clipcondense/internal/logging"
	"github.com/backmassage/clipcondense/internal/pipeline"
)

// newSrsCommand builds the "srs" subcommand, grounded on
// original_source/subs2cia/cli_srs.py's argument parser.
func newSrsCommand() *cobra.Command {
	opts := config.DefaultSrsOptions()
	colorFlag := string(config.ColorAuto)
	var helpColumns bool

	cmd := &cobra.Command{
		Use:   "srs",
		Short: "Export one spaced-repetition card per subtitle event",
		RunE: func(cmd *cobra.Command, args []string) error {
			silenceUsage(cmd)

			if helpColumns {
				printColumnHelp(cmd)
				return nil
			}

			resolveInputStreamFlags(cmd.Flags(), &opts.Shared)

			mode, err := parseColorMode(colorFlag)
			if err != nil {
				return err
			}
			opts.ColorMode = mode

			if err := opts.Validate(); err != nil {
				return pipeline.NewUsageError(err.Error())
			}

			log, err := logging.NewLogger(opts.ColorMode, opts.LogFile)
			if err != nil {
				return fmt.Errorf("start logger: %w", err)
			}
			defer log.Close()

			return pipeline.Srs(cmd.Context(), &opts, log)
		},
	}

	fs := cmd.Flags()
	defineInputStreamFlags(fs, &opts.Shared)
	defineOverwriteFlag(fs, &opts.Shared)
	defineSubtitleModFlags(fs, &opts.Mods)
	defineToolFlags(fs, &opts.Shared)
	defineDisplayFlags(fs, &opts.Shared, &colorFlag)

	fs.StringVarP(&opts.OutputPath, "output-path", "o", "", "SRS export table output path")
	fs.StringVarP(&opts.MediaDir, "media", "m", "", "directory for exported clip/screenshot files (default: alongside --output-path)")
	fs.StringSliceVarP(&opts.Columns, "columns", "c", opts.Columns, "comma-separated columns to export, in order (use --help-columns to list names)")
	fs.StringVar(&opts.DisallowedChars, "disallowed-chars", opts.DisallowedChars, "characters to replace with '_' in generated media filenames")
	fs.StringVar(&opts.OutputDelimiter, "output-delimiter", "", "export table delimiter: a named form (tab, pipe, semicolon, colon, comma, space), a literal character, or empty to infer from the output extension")
	fs.BoolVar(&helpColumns, "help-columns", false, "list valid --columns names and exit")

	return cmd
}

// printColumnHelp lists the recognized --columns names in a stable order.
func printColumnHelp(cmd *cobra.Command) {
	names := make([]string, 0, len(config.AllowedColumns))
	for name := range config.AllowedColumns {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(cmd.OutOrStdout(), "valid --columns names:")
	fmt.Fprintln(cmd.OutOrStdout(), "  "+strings.Join(names, ", "))
}
