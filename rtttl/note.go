package rtttl

import (
	"github.com/jsphweid/ringdex/model"
	"golang.org/x/exp/slices"
)

// Pitches lists every legal pitch symbol. "h" is the German name for "b".
var Pitches = []model.Pitch{"p", "c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "h", "b"}

// ParseNote validates a single lower-cased note token of the form
// [duration][pitch][octave][.] and returns its descriptor.
func ParseNote(token string) (model.NoteDescriptor, error) {
	var n model.NoteDescriptor
	s := &scanner{src: token}

	if isDigit(s.peek()) {
		duration, ok := s.number(1, 2)
		if !ok || !slices.Contains(Durations, duration) {
			return model.NoteDescriptor{}, invalidNote(token)
		}
		n.Duration = &duration
	}

	n.Pitch = s.pitch()
	if !slices.Contains(Pitches, n.Pitch) {
		return model.NoteDescriptor{}, invalidNote(token)
	}

	if c := s.peek(); isDigit(c) {
		s.pos++
		octave := int(c - '0')
		if !slices.Contains(Octaves, octave) {
			return model.NoteDescriptor{}, invalidNote(token)
		}
		n.Octave = &octave
	}

	n.Dot = s.accept('.')
	if !s.done() {
		return model.NoteDescriptor{}, invalidNote(token)
	}
	return n, nil
}
