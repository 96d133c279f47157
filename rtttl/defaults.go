package rtttl

import (
	"github.com/jsphweid/ringdex/model"
	"golang.org/x/exp/slices"
)

// Baseline is used when a ringtone leaves its defaults section empty.
var Baseline = model.Defaults{Duration: 4, Octave: 6, BPM: 63}

var (
	Durations = []int{1, 2, 4, 8, 16, 32}
	Octaves   = []int{4, 5, 6, 7}
	BPMs      = []int{
		25, 28, 31, 35, 40, 45, 50, 56, 63, 70, 80, 90, 100, 112, 125, 140,
		160, 180, 200, 225, 250, 285, 320, 355, 400, 450, 500, 565, 635, 715, 800, 900,
	}
)

// ParseDefaults reads a whitespace-free "d=<dur>,o=<oct>,b=<bpm>" section.
// Keys must appear exactly once, in that order.
func ParseDefaults(section string) (model.Defaults, error) {
	if section == "" {
		return Baseline, nil
	}

	var d model.Defaults
	var ok bool
	s := &scanner{src: section}

	if !s.expect("d=") {
		return model.Defaults{}, invalidDefaults(section)
	}
	if d.Duration, ok = s.number(1, 2); !ok {
		return model.Defaults{}, invalidDefaults(section)
	}
	if !s.expect(",o=") {
		return model.Defaults{}, invalidDefaults(section)
	}
	if d.Octave, ok = s.number(1, 1); !ok {
		return model.Defaults{}, invalidDefaults(section)
	}
	if !s.expect(",b=") {
		return model.Defaults{}, invalidDefaults(section)
	}
	if d.BPM, ok = s.number(1, 3); !ok || !s.done() {
		return model.Defaults{}, invalidDefaults(section)
	}

	if !slices.Contains(Durations, d.Duration) ||
		!slices.Contains(Octaves, d.Octave) ||
		!slices.Contains(BPMs, d.BPM) {
		return model.Defaults{}, invalidDefaults(section)
	}
	return d, nil
}
