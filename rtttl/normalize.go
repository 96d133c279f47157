package rtttl

import "strings"

// CorrectNoteSyntax moves a dot written before the octave to after it, so
// "8d.6" becomes "8d6.". Tokens that don't have the shape
// [0-2 digits][pitch][.][digits] come back untouched and are left for
// ParseNote to reject.
func CorrectNoteSyntax(note string) string {
	s := &scanner{src: note}
	duration := s.digits()
	if len(duration) > 2 {
		return note
	}

	var pitch string
	switch c := s.peek(); {
	case s.done():
		return note
	case strings.IndexByte("pbeh", c) >= 0:
		pitch = string(c)
		s.pos++
	case strings.IndexByte("cdfga", c) >= 0:
		pitch = s.pitch()
	default:
		return note
	}

	dot := ""
	if s.accept('.') {
		dot = "."
	}
	octave := s.digits()
	if !s.done() {
		return note
	}
	return duration + pitch + octave + dot
}
