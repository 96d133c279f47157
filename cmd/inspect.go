package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/ringdex/midi"
	"github.com/jsphweid/ringdex/model"
	"github.com/jsphweid/ringdex/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a MIDI file",
	Long:  `Lists the notes of a MIDI file, such as one written by export.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "time format: %v\n", s.TimeFormat)
		inspect(cmd.OutOrStdout(), midi.Notes(s))
		return nil
	},
}

var keyNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// keyName spells a MIDI key the way RTTTL does, with octave 4 starting at 60.
func keyName(key uint8) string {
	return fmt.Sprintf("%s%d", keyNames[key%12], int(key)/12-1)
}

func inspect(w io.Writer, notes []model.MidiNote) {
	byTrack := make(map[int][]model.MidiNote)
	for _, n := range notes {
		byTrack[n.Track] = append(byTrack[n.Track], n)
	}
	for _, track := range util.GetKeys(byTrack) {
		fmt.Fprintf(w, "track %v: %v notes\n", track, len(byTrack[track]))
		for _, n := range byTrack[track] {
			fmt.Fprintf(w, "  %-4v key %3v start %6v length %5v\n", keyName(n.Key), n.Key, n.Start, n.Length)
		}
	}
}
