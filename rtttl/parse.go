// Package rtttl parses Ring Tone Text Transfer Language strings such as
//
//	Barbie Girl:d=8,o=5,b=125:g#,e,g#,c#6,4a,4p
//
// into notes with a frequency in Hz and a duration in milliseconds.
package rtttl

import (
	"strings"

	"github.com/jsphweid/ringdex/model"
)

// Parse reads a complete "<title>:<defaults>:<notes>" ringtone. Unless
// strictNoteSyntax is set, note tokens written as "8f#.6" are accepted and
// read as "8f#6.". The first invalid section or note aborts the parse.
func Parse(rtttl string, strictNoteSyntax bool) (model.Document, error) {
	sections := strings.Split(rtttl, ":")
	if len(sections) != 3 {
		return model.Document{}, invalidFormat(rtttl)
	}

	defaults, err := ParseDefaults(RemoveWhitespace(sections[1]))
	if err != nil {
		return model.Document{}, err
	}

	tokens := strings.Split(strings.ToLower(RemoveWhitespace(sections[2])), ",")
	notes := make([]model.ConvertedNote, 0, len(tokens))
	for _, token := range tokens {
		if !strictNoteSyntax {
			token = CorrectNoteSyntax(token)
		}
		n, err := ParseNote(token)
		if err != nil {
			return model.Document{}, err
		}
		notes = append(notes, ConvertNote(n, defaults))
	}

	return model.Document{Title: sections[0], Notes: notes, Defaults: defaults}, nil
}
