package dot

import (
	"fmt"
	"strconv"
	"strings"
)

// scanner is a position-tracked cursor over DOT source text. The parsing
// primitives below either consume input and succeed, or fail with a
// *ParseError; callers backtrack by saving and restoring a mark before
// trying an alternative.
type scanner struct {
	src  []byte
	pos  int
	line int // 1-based
	col  int // 1-based
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

// mark captures the cursor state for backtracking.
type mark struct {
	pos, line, col int
}

func (s *scanner) mark() mark {
	return mark{s.pos, s.line, s.col}
}

func (s *scanner) reset(m mark) {
	s.pos, s.line, s.col = m.pos, m.line, m.col
}

func (s *scanner) position() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

// errf builds a *ParseError at the current position.
func (s *scanner) errf(format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: s.position()}
}

// --- primitives ---

// literal consumes lit exactly, or fails without consuming anything.
// Keyword matching is case-sensitive.
func (s *scanner) literal(lit string) error {
	if s.pos+len(lit) > len(s.src) || string(s.src[s.pos:s.pos+len(lit)]) != lit {
		got := "end of input"
		if !s.eof() {
			got = strconv.QuoteRune(rune(s.peek()))
		}
		return s.errf("expected %q, got %s", lit, got)
	}
	for range lit {
		s.advance()
	}
	return nil
}

// spaces skips an optional run of spaces and tabs.
func (s *scanner) spaces() {
	for !s.eof() && (s.peek() == ' ' || s.peek() == '\t') {
		s.advance()
	}
}

// spaces1 requires at least one space or tab, then skips the rest of the run.
func (s *scanner) spaces1() error {
	if s.eof() || (s.peek() != ' ' && s.peek() != '\t') {
		return s.errf("expected whitespace")
	}
	s.spaces()
	return nil
}

// newline consumes a line ending ("\n" or "\r\n").
func (s *scanner) newline() error {
	if !s.eof() && s.peek() == '\r' {
		s.advance()
	}
	if s.eof() || s.peek() != '\n' {
		return s.errf("expected newline")
	}
	s.advance()
	return nil
}

// restOfLine discards everything up to and including the next line ending.
func (s *scanner) restOfLine() {
	for !s.eof() && s.peek() != '\n' {
		s.advance()
	}
	if !s.eof() {
		s.advance()
	}
}

// identifier consumes [A-Za-z_][A-Za-z0-9_]*.
func (s *scanner) identifier() (string, error) {
	if s.eof() || !isIdentStart(s.peek()) {
		return "", s.errf("expected identifier")
	}
	start := s.pos
	for !s.eof() && isIdentPart(s.peek()) {
		s.advance()
	}
	return string(s.src[start:s.pos]), nil
}

// integer consumes a run of decimal digits.
func (s *scanner) integer() (int, error) {
	if s.eof() || !isDigit(s.peek()) {
		return 0, s.errf("expected integer")
	}
	start := s.pos
	for !s.eof() && isDigit(s.peek()) {
		s.advance()
	}
	n, err := strconv.Atoi(string(s.src[start:s.pos]))
	if err != nil {
		return 0, &ParseError{
			Message: fmt.Sprintf("invalid integer %q: %v", s.src[start:s.pos], err),
			Pos:     s.position(),
			Cause:   err,
		}
	}
	return n, nil
}

// number consumes -?[0-9]+(.[0-9]+)? as a float.
func (s *scanner) number() (float64, error) {
	m := s.mark()
	start := s.pos
	if !s.eof() && s.peek() == '-' {
		s.advance()
	}
	if s.eof() || !isDigit(s.peek()) {
		s.reset(m)
		return 0, s.errf("expected number")
	}
	for !s.eof() && isDigit(s.peek()) {
		s.advance()
	}
	if !s.eof() && s.peek() == '.' && s.pos+1 < len(s.src) && isDigit(s.src[s.pos+1]) {
		s.advance()
		for !s.eof() && isDigit(s.peek()) {
			s.advance()
		}
	}
	f, err := strconv.ParseFloat(string(s.src[start:s.pos]), 64)
	if err != nil {
		s.reset(m)
		return 0, &ParseError{
			Message: fmt.Sprintf("invalid number %q: %v", s.src[start:s.pos], err),
			Pos:     s.position(),
			Cause:   err,
		}
	}
	return f, nil
}

// quoted consumes a double-quoted string, decoding \" and \\ escapes.
// Unknown escapes are preserved as-is.
func (s *scanner) quoted() (string, error) {
	if s.eof() || s.peek() != '"' {
		return "", s.errf("expected '\"'")
	}
	openPos := s.position()
	s.advance()

	var b strings.Builder
	for {
		if s.eof() {
			return "", &ParseError{Message: "unterminated string", Pos: openPos}
		}
		ch := s.advance()
		if ch == '"' {
			return b.String(), nil
		}
		if ch == '\\' {
			if s.eof() {
				return "", &ParseError{Message: "unterminated string escape", Pos: openPos}
			}
			esc := s.advance()
			switch esc {
			case '"', '\\':
				b.WriteByte(esc)
			default:
				b.WriteByte('\\')
				b.WriteByte(esc)
			}
			continue
		}
		b.WriteByte(ch)
	}
}

// htmlString consumes an angle-bracketed string, tracking bracket depth so
// nested markup survives. The content is kept opaque.
func (s *scanner) htmlString() (string, error) {
	if s.eof() || s.peek() != '<' {
		return "", s.errf("expected '<'")
	}
	openPos := s.position()
	s.advance()
	start := s.pos

	depth := 1
	for {
		if s.eof() {
			return "", &ParseError{Message: "unterminated HTML string", Pos: openPos}
		}
		ch := s.advance()
		if ch == '<' {
			depth++
		}
		if ch == '>' {
			depth--
			if depth == 0 {
				return string(s.src[start : s.pos-1]), nil
			}
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
