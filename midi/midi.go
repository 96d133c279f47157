package midi

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/jsphweid/ringdex/constants"
	"github.com/jsphweid/ringdex/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

// FrequencyToKey gives the nearest MIDI key for freq. Rests and pitches
// outside the MIDI range report false.
func FrequencyToKey(freq float64) (uint8, bool) {
	if freq <= 0 {
		return 0, false
	}
	key := math.Round(69 + 12*math.Log2(freq/440))
	if key < 0 || key > 127 {
		return 0, false
	}
	return uint8(key), true
}

// Write encodes doc as a single track SMF at the document tempo. Rests become
// silence before the next note.
func Write(w io.Writer, doc model.Document) error {
	if doc.Defaults.BPM <= 0 {
		return errors.Errorf("no tempo for %q", doc.Title)
	}

	bpm := float64(doc.Defaults.BPM)
	clock := smf.MetricTicks(constants.TicksPerQuarter)
	msecPerQuarter := 60000 / bpm

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(doc.Title))
	tr.Add(0, smf.MetaTempo(bpm))

	var pending uint32
	for _, n := range doc.Notes {
		ticks := uint32(math.Round(n.Duration / msecPerQuarter * float64(clock.Ticks4th())))
		key, ok := FrequencyToKey(n.Frequency)
		if !ok {
			pending += ticks
			continue
		}
		tr.Add(pending, gomidi.NoteOn(constants.NoteChannel, key, constants.NoteVelocity))
		tr.Add(ticks, gomidi.NoteOff(constants.NoteChannel, key))
		pending = 0
	}
	tr.Close(pending)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return errors.Wrap(err, "Could not add track")
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "Could not write midi")
	}
	return nil
}

// Notes lists every sounded note in s, with positions in ticks.
func Notes(s *smf.SMF) []model.MidiNote {
	var res []model.MidiNote
	for i, track := range s.Tracks {
		var absTicks uint64
		pressed := make(map[uint8]uint64)
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			var channel, key, velocity uint8
			switch {
			case evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				pressed[key] = absTicks
			case evt.Message.GetNoteOff(&channel, &key, &velocity),
				evt.Message.GetNoteOn(&channel, &key, &velocity):
				start, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				res = append(res, model.MidiNote{Track: i, Key: key, Start: start, Length: absTicks - start})
			}
		}
	}
	return res
}
