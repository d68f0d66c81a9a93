package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/clipcondense/internal/config"
	"github.com/backmassage/clipcondense/internal/logging"
	"github.com/backmassage/clipcondense/internal/pipeline"
)

// newCondenseCommand builds the "condense" subcommand, grounded on
// original_source/subs2cia/cli_condense.py's argument parser.
func newCondenseCommand() *cobra.Command {
	opts := config.DefaultCondenseOptions()
	padding := &paddingFlags{}
	colorFlag := string(config.ColorAuto)

	cmd := &cobra.Command{
		Use:   "condense",
		Short: "Trim media down to the spans its subtitles cover",
		RunE: func(cmd *cobra.Command, args []string) error {
			silenceUsage(cmd)

			resolveInputStreamFlags(cmd.Flags(), &opts.Shared)

			p, err := resolvePaddingFlags(cmd.Flags(), padding)
			if err != nil {
				return err
			}
			opts.Padding = p

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

			return pipeline.Condense(cmd.Context(), &opts, log)
		},
	}

	fs := cmd.Flags()
	defineInputStreamFlags(fs, &opts.Shared)
	defineOverwriteFlag(fs, &opts.Shared)
	definePaddingFlags(fs, padding)
	defineSubtitleModFlags(fs, &opts.Mods)
	defineToolFlags(fs, &opts.Shared)
	defineDisplayFlags(fs, &opts.Shared, &colorFlag)

	fs.StringVarP(&opts.OutputPath, "output-path", "o", "", "condensed media output path")
	fs.StringVar(&opts.OutputSubsPath, "output-subs-path", "", "condensed subtitles output path")
	fs.StringVar(&opts.OutputSubsPath, "os", "", "alias for --output-subs-path")

	return cmd
}
