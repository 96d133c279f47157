package rtttl

import (
	"github.com/jsphweid/ringdex/model"
	"github.com/jsphweid/ringdex/util"
)

var octaveMultipliers = map[int]float64{4: 1, 5: 2, 6: 4, 7: 8}

// Frequencies in Hz at octave 4.
var baseFrequencies = map[model.Pitch]float64{
	"p":  0,
	"c":  261.6,
	"c#": 277.2,
	"d":  293.7,
	"d#": 311.1,
	"e":  329.6,
	"f":  349.2,
	"f#": 370.0,
	"g":  392.0,
	"g#": 415.3,
	"a":  440.0,
	"a#": 466.2,
	"h":  493.9,
	"b":  493.9,
}

// ConvertNote turns a validated descriptor into frequency and milliseconds.
// Fields missing from the note are taken from defaults.
func ConvertNote(n model.NoteDescriptor, defaults model.Defaults) model.ConvertedNote {
	octave := defaults.Octave
	if n.Octave != nil {
		octave = *n.Octave
	}
	duration := defaults.Duration
	if n.Duration != nil {
		duration = *n.Duration
	}

	msecPerBeat := (60.0 / float64(defaults.BPM)) * 4 * 1000
	multiplier := 1.0
	if n.Dot {
		multiplier = 1.5
	}

	return model.ConvertedNote{
		Frequency: baseFrequencies[n.Pitch] * octaveMultipliers[octave],
		Duration:  util.Round(msecPerBeat/float64(duration)*multiplier, 3),
	}
}
