package cmd

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/ringdex/constants"
	"github.com/jsphweid/ringdex/midi"
	"github.com/jsphweid/ringdex/rtttl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	exportStrict bool
	exportOut    string
)

func init() {
	exportCmd.Flags().BoolVar(&exportStrict, "strict", constants.GetStrictDefault(), "reject notes written with the dot before the octave")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default $RTTTL_OUT_DIR/<uuid>.mid)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <rtttl>",
	Short: "Exports a ringtone as a MIDI file",
	Long:  `Parses a ringtone and writes it as a single track Standard MIDI File.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := Export(args[0], exportOut, exportStrict)
		if err != nil {
			return err
		}
		cmd.Println(path)
		return nil
	},
}

// Export writes tune to path as MIDI and returns the path written. An empty
// path picks a fresh file name in the output directory.
func Export(tune string, path string, strict bool) (string, error) {
	doc, err := rtttl.Parse(tune, strict)
	if err != nil {
		return "", err
	}

	if path == "" {
		path = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return "", errors.Wrap(err, "Could not create output dir")
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "Couldn't open file: %v", path)
	}
	defer f.Close()

	if err := midi.Write(f, doc); err != nil {
		return "", errors.Wrapf(err, "Write failed for file: %v", path)
	}
	logger.Info("exported ringtone", "title", doc.Title, "notes", doc.Len(), "path", path)
	return path, nil
}
