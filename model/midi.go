package model

// MidiNote is a note found in a Standard MIDI File, positioned in ticks.
type MidiNote struct {
	Track  int
	Key    uint8
	Start  uint64
	Length uint64
}
