package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/ringdex/constants"
	"github.com/jsphweid/ringdex/file"
	"github.com/jsphweid/ringdex/rtttl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	parseStrict bool
	parseJSON   bool
)

func init() {
	parseCmd.Flags().BoolVar(&parseStrict, "strict", constants.GetStrictDefault(), "reject notes written with the dot before the octave")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse [rtttl...]",
	Short: "Parses ringtones",
	Long: `Parses RTTTL ringtones given as arguments and prints their notes.
With no arguments, or "-", ringtones are read from stdin, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tunes := args
		if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
			var err error
			tunes, err = file.ReadRingtones(cmd.InOrStdin())
			if err != nil {
				return err
			}
		}
		return parseAll(cmd.OutOrStdout(), tunes, parseStrict, parseJSON)
	},
}

func parseAll(w io.Writer, tunes []string, strict bool, asJSON bool) error {
	encoder := json.NewEncoder(w)
	for i, tune := range tunes {
		logger.Debug("parsing ringtone", "index", i, "rtttl", tune)
		doc, err := rtttl.Parse(tune, strict)
		if err != nil {
			return errors.Wrapf(err, "ringtone %d", i+1)
		}

		if asJSON {
			if err := encoder.Encode(toResponse(doc)); err != nil {
				return errors.Wrap(err, "Could not encode ringtone")
			}
			continue
		}

		fmt.Fprintf(w, "%v (%v, %v notes, %.3f ms)\n", doc.Title, doc.Defaults, doc.Len(), doc.TotalDuration())
		for j, n := range doc.Notes {
			fmt.Fprintf(w, "%4d %9.3f Hz %9.3f ms\n", j+1, n.Frequency, n.Duration)
		}
	}
	return nil
}
