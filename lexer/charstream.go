/*
File    : logomix/lexer/charstream.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// stream is a one-character-lookahead scanner over raw source bytes,
// tracking line/column for diagnostics (spec.md §4.1).
type stream struct {
	src    []byte
	pos    int
	line   int
	column int
}

func newStream(src string) *stream {
	return &stream{src: []byte(src), line: 1, column: 1}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// done reports whether the stream has been fully consumed.
func (s *stream) done() bool { return s.pos >= len(s.src) }

// current returns the byte at the cursor, or 0 at end of input.
func (s *stream) current() byte {
	if s.done() {
		return 0
	}
	return s.src[s.pos]
}

// peekAt returns the byte offset ahead of the cursor, or 0 past the end.
func (s *stream) peekAt(offset int) byte {
	i := s.pos + offset
	if i < 0 || i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

// advance consumes one byte, updating line/column bookkeeping.
func (s *stream) advance() {
	if s.done() {
		return
	}
	if s.src[s.pos] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.pos++
}

// skipTrivia consumes whitespace, line continuations ("~" + newline), and
// comments (";" to end of line, continued across a trailing "~") per
// spec.md §4.1's skip policy, applied after every token and initially.
func (s *stream) skipTrivia() {
	for {
		switch {
		case isSpace(s.current()):
			s.advance()
		case s.current() == '~' && (s.peekAt(1) == '\n' || (s.peekAt(1) == '\r' && s.peekAt(2) == '\n')):
			s.advance()
			if s.current() == '\r' {
				s.advance()
			}
			s.advance() // consume the newline itself
		case s.current() == ';':
			s.skipComment()
		default:
			return
		}
	}
}

// skipComment consumes a ";" comment to end of line. If the line ends in
// "~", the following newline is also consumed (continued comment).
func (s *stream) skipComment() {
	for !s.done() && s.current() != '\n' {
		s.advance()
	}
	// s.current() is now '\n' or end of input; check for a preceding '~'
	// immediately before it to decide whether to continue swallowing.
	if s.pos > 0 && s.src[s.pos-1] == '~' && s.current() == '\n' {
		s.advance()
		s.skipTrivia()
	}
}
