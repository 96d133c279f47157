package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// logger is shared by every command. It is replaced by initLogger before any
// command runs.
var logger = slog.Default()

var debug bool

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "ringdex",
	Short: "RTTTL ringtone parser",
	Long: `ringdex parses RTTTL (Ring Tone Text Transfer Language) ringtones into
notes with a frequency in Hz and a duration in milliseconds, exports them as
MIDI files and serves the parser over HTTP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
