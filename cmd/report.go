package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/ringdex/constants"
	"github.com/jsphweid/ringdex/file"
	"github.com/jsphweid/ringdex/rtttl"
	"github.com/jsphweid/ringdex/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	reportStrict bool
	reportMax    int
)

func init() {
	reportCmd.Flags().BoolVar(&reportStrict, "strict", constants.GetStrictDefault(), "reject notes written with the dot before the octave")
	reportCmd.Flags().IntVar(&reportMax, "max", 0, "maximum number of files to read (0 reads all)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <dir>",
	Short: "Creates a report",
	Long:  `Parses every ringtone file under a directory and reports how many parse.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := file.GatherRingtonePaths(args[0], reportMax)
		if err != nil {
			return err
		}
		report, err := analyzeRingtones(paths, reportStrict)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

type ringtonesReport struct {
	numFiles      int
	numTunes      int
	numValid      int
	invalidByKind map[string]int
	numNotes      int
	numRests      int
	durations     []float64
}

func analyzeRingtones(paths []string, strict bool) (ringtonesReport, error) {
	report := ringtonesReport{invalidByKind: make(map[string]int)}

	for i, path := range paths {
		logger.Debug("reading ringtones", "file", i+1, "of", len(paths), "path", path)
		f, err := os.Open(path)
		if err != nil {
			return report, errors.Wrapf(err, "Couldn't read file: %v", path)
		}
		tunes, err := file.ReadRingtones(f)
		f.Close()
		if err != nil {
			return report, errors.Wrap(err, path)
		}

		report.numFiles += 1
		for _, tune := range tunes {
			report.numTunes += 1
			doc, err := rtttl.Parse(tune, strict)
			if err != nil {
				logger.Info("skipping ringtone", "path", path, "err", err)
				report.invalidByKind[rtttl.KindName(err)] += 1
				continue
			}
			report.numValid += 1
			report.numNotes += doc.Len()
			for _, n := range doc.Notes {
				if n.IsRest() {
					report.numRests += 1
				}
			}
			report.durations = append(report.durations, doc.TotalDuration())
		}
	}

	return report, nil
}

func printReport(w io.Writer, report ringtonesReport) {
	fmt.Fprintf(w, "files: %v\n", report.numFiles)
	fmt.Fprintf(w, "ringtones: %v\n", report.numTunes)
	fmt.Fprintf(w, "valid: %v\n", report.numValid)
	for _, kind := range util.GetKeys(report.invalidByKind) {
		fmt.Fprintf(w, "invalid (%v): %v\n", kind, report.invalidByKind[kind])
	}
	fmt.Fprintf(w, "notes: %v (%v rests)\n", report.numNotes, report.numRests)
	fmt.Fprintf(w, "total playing time: %.3f ms\n", util.Sum(report.durations))
}
