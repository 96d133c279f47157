package model

import (
	"fmt"
	"strings"
)

type Pitch = string

type Defaults struct {
	Duration int
	Octave   int
	BPM      int
}

func (d Defaults) String() string {
	return fmt.Sprintf("d=%d,o=%d,b=%d", d.Duration, d.Octave, d.BPM)
}

// NoteDescriptor is a validated note token. A nil Duration or Octave means
// the document default applies.
type NoteDescriptor struct {
	Duration *int
	Pitch    Pitch
	Octave   *int
	Dot      bool
}

// String renders the descriptor in canonical token order.
func (n NoteDescriptor) String() string {
	var sb strings.Builder
	if n.Duration != nil {
		fmt.Fprintf(&sb, "%d", *n.Duration)
	}
	sb.WriteString(n.Pitch)
	if n.Octave != nil {
		fmt.Fprintf(&sb, "%d", *n.Octave)
	}
	if n.Dot {
		sb.WriteByte('.')
	}
	return sb.String()
}

type ConvertedNote struct {
	Frequency float64 `json:"frequency"`
	Duration  float64 `json:"duration"`
}

func (n ConvertedNote) IsRest() bool {
	return n.Frequency == 0
}

type Document struct {
	Title string
	Notes []ConvertedNote

	// Defaults the notes were converted with; kept for tempo-aware exports.
	Defaults Defaults
}

func (d Document) Len() int {
	return len(d.Notes)
}

// TotalDuration is the playing time of the whole melody in milliseconds.
func (d Document) TotalDuration() float64 {
	var total float64
	for _, n := range d.Notes {
		total += n.Duration
	}
	return total
}
