package cli

import (
	"github.com/spf13/cobra"

	"github.com/backmassage/clipcondense/internal/check"
	"github.com/backmassage/clipcondense/internal/config"
	"github.com/backmassage/clipcondense/internal/logging"
)

// NewRootCommand builds the top-level "clipcondense" command and wires in
// the condense and srs subcommands, mirroring
// original_source/subs2cia/__main__.py's subparser dispatch.
func NewRootCommand(version, commit string) *cobra.Command {
	checkOnly := false
	sh := config.DefaultShared()
	colorFlag := string(config.ColorAuto)

	root := &cobra.Command{
		Use:           "clipcondense",
		Short:         "Condense subtitled media down to the spans that carry dialogue",
		Version:       version + " (" + commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !checkOnly {
				return cmd.Help()
			}

			mode, err := parseColorMode(colorFlag)
			if err != nil {
				return err
			}
			log, err := logging.NewLogger(mode, "")
			if err != nil {
				return err
			}
			defer log.Close()

			check.RunCheck(sh.FfmpegCmd, sh.FfprobeCmd, log)
			return nil
		},
	}

	fs := root.PersistentFlags()
	fs.BoolVar(&checkOnly, "check", false, "print ffmpeg/ffprobe availability and version info, then exit")
	fs.StringVar(&sh.FfmpegCmd, "ffmpeg-cmd", sh.FfmpegCmd, "command to invoke for ffmpeg (used with --check)")
	fs.StringVar(&sh.FfprobeCmd, "ffprobe-cmd", sh.FfprobeCmd, "command to invoke for ffprobe (used with --check)")
	fs.StringVar(&colorFlag, "color", colorFlag, "color mode for --check output: auto, always, never")

	root.AddCommand(newCondenseCommand())
	root.AddCommand(newSrsCommand())

	return root
}
