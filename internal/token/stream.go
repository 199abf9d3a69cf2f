package token

// Stream is a cursor over a lexed token sequence. The parser owns exactly
// one stream per compilation unit; it is not safe for concurrent use.
type Stream struct {
	tokens   []Token
	pos      int
	lastSpan Span
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Peek returns the next token without consuming it. The second result is
// false at end of input.
func (s *Stream) Peek() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos], true
}

// Peek2 returns the token after next, a second token of lookahead.
func (s *Stream) Peek2() (Token, bool) {
	if s.pos+1 >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos+1], true
}

// Bump consumes and returns the current token, recording its span as the
// last seen position for error reporting.
func (s *Stream) Bump() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	s.lastSpan = tok.Span
	return tok, true
}

// LastSpan is the span of the most recently consumed token, or the zero span
// if nothing was consumed yet. Used to place errors at end of input.
func (s *Stream) LastSpan() Span {
	return s.lastSpan
}

func (s *Stream) Len() int {
	return len(s.tokens)
}
