package lexer

import (
	"math/big"

	"github.com/quadra-lang/quadra/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			tok = l.twoCharToken(token.EQ)
		} else {
			tok = l.newToken(token.ASSIGN)
		}
	case '+':
		tok = l.newToken(token.PLUS)
	case '-':
		if l.peekChar() == '>' {
			tok = l.twoCharToken(token.ARROW)
		} else {
			tok = l.newToken(token.MINUS)
		}
	case '*':
		tok = l.newToken(token.ASTERISK)
	case '!':
		tok = l.newToken(token.BANG)
	case '<':
		if l.peekChar() == '=' {
			tok = l.twoCharToken(token.LTE)
		} else {
			tok = l.newToken(token.LT)
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.twoCharToken(token.GTE)
		} else {
			tok = l.newToken(token.GT)
		}
	case '&':
		if l.peekChar() == '&' {
			tok = l.twoCharToken(token.AND)
		} else {
			tok = l.newToken(token.ILLEGAL)
		}
	case '/':
		if l.peekChar() == '/' {
			return l.readComment()
		}
		tok = l.newToken(token.ILLEGAL)
	case ':':
		if l.peekChar() == ':' {
			tok = l.twoCharToken(token.DOUBLECOLON)
		} else {
			tok = l.newToken(token.COLON)
		}
	case '.':
		if l.peekChar() == '.' {
			tok = l.twoCharToken(token.DOUBLEDOT)
		} else {
			tok = l.newToken(token.DOT)
		}
	case ';':
		tok = l.newToken(token.SEMICOLON)
	case ',':
		tok = l.newToken(token.COMMA)
	case '(':
		tok = l.newToken(token.LPAREN)
	case ')':
		tok = l.newToken(token.RPAREN)
	case '[':
		tok = l.newToken(token.LBRACKET)
	case ']':
		tok = l.newToken(token.RBRACKET)
	case '{':
		tok = l.newToken(token.LBRACE)
	case '}':
		tok = l.newToken(token.RBRACE)
	case 0:
		tok = token.Token{
			Kind:   token.EOF,
			Span:   token.NewSpan(l.position, 0),
			Line:   l.line,
			Column: l.column,
		}
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.newToken(token.ILLEGAL)
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(kind token.Kind) token.Token {
	lexeme := string(l.ch)
	return token.Token{
		Kind:    kind,
		Lexeme:  lexeme,
		Literal: lexeme,
		Span:    token.NewSpan(l.position, 1),
		Line:    l.line,
		Column:  l.column,
	}
}

// twoCharToken builds a token from the current char and the next one,
// consuming the first of the two.
func (l *Lexer) twoCharToken(kind token.Kind) token.Token {
	pos, line, col := l.position, l.line, l.column
	l.readChar()
	lexeme := l.input[pos : l.position+1]
	return token.Token{
		Kind:    kind,
		Lexeme:  lexeme,
		Literal: lexeme,
		Span:    token.NewSpan(pos, 2),
		Line:    line,
		Column:  col,
	}
}

func (l *Lexer) readIdentifier() token.Token {
	pos, line, col := l.position, l.line, l.column
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[pos:l.position]
	return token.Token{
		Kind:    token.LookupIdent(lexeme),
		Lexeme:  lexeme,
		Literal: lexeme,
		Span:    token.NewSpan(pos, len(lexeme)),
		Line:    line,
		Column:  col,
	}
}

func (l *Lexer) readNumber() token.Token {
	pos, line, col := l.position, l.line, l.column
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[pos:l.position]

	val := new(big.Int)
	if _, ok := val.SetString(lexeme, 10); !ok {
		return token.Token{
			Kind:    token.ILLEGAL,
			Lexeme:  lexeme,
			Literal: "invalid integer literal",
			Span:    token.NewSpan(pos, len(lexeme)),
			Line:    line,
			Column:  col,
		}
	}
	return token.Token{
		Kind:    token.INT,
		Lexeme:  lexeme,
		Literal: val,
		Span:    token.NewSpan(pos, len(lexeme)),
		Line:    line,
		Column:  col,
	}
}

// readComment consumes a `//` comment up to (not including) the newline.
// Comments are real tokens here: the parser keeps them in the AST so tooling
// can round-trip source.
func (l *Lexer) readComment() token.Token {
	pos, line, col := l.position, l.line, l.column
	l.readChar() // first /
	l.readChar() // second /
	start := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	text := l.input[start:l.position]
	lexeme := l.input[pos:l.position]
	return token.Token{
		Kind:    token.COMMENT,
		Lexeme:  lexeme,
		Literal: text,
		Span:    token.NewSpan(pos, len(lexeme)),
		Line:    line,
		Column:  col,
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
