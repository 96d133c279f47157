package rtttl

import "strconv"

// scanner walks a token byte by byte. All RTTTL grammar is ASCII.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) accept(c byte) bool {
	if !s.done() && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) expect(lit string) bool {
	if len(s.src)-s.pos < len(lit) || s.src[s.pos:s.pos+len(lit)] != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

// digits consumes every digit at the cursor and returns them as text.
func (s *scanner) digits() string {
	start := s.pos
	for !s.done() && isDigit(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// number consumes between lo and hi digits. Running into a further digit
// past hi is a failure, not a split.
func (s *scanner) number(lo, hi int) (int, bool) {
	text := s.digits()
	if len(text) < lo || len(text) > hi {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// pitch consumes a pitch symbol of the form letter[#]. Whether the symbol is
// legal is up to the caller.
func (s *scanner) pitch() string {
	if s.done() || !isLetter(s.src[s.pos]) {
		return ""
	}
	start := s.pos
	s.pos++
	s.accept('#')
	return s.src[start:s.pos]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
