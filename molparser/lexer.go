package molparser

import (
	"fmt"
	"unicode/utf8"
)

// tripleGlyph is the UTF-8 encoding of '≡' (U+2261 IDENTICAL TO).
const tripleGlyph = "≡"

// Lexer tokenizes notation source text into a stream of tokens.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skipWhitespace skips spaces, tabs, and newlines. Newlines are plain
// statement separators, equivalent to ';' and spaces, so the lexer
// treats them all as trivia.
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		return
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}, nil
	}

	pos := l.currentPos()
	ch := l.peek()

	// Single-character tokens
	switch ch {
	case '[':
		l.advance()
		return Token{Kind: TokenLBracket, Literal: "[", Pos: pos}, nil
	case ']':
		l.advance()
		return Token{Kind: TokenRBracket, Literal: "]", Pos: pos}, nil
	case '{':
		l.advance()
		return Token{Kind: TokenLBrace, Literal: "{", Pos: pos}, nil
	case '}':
		l.advance()
		return Token{Kind: TokenRBrace, Literal: "}", Pos: pos}, nil
	case ':':
		l.advance()
		return Token{Kind: TokenColon, Literal: ":", Pos: pos}, nil
	case ',':
		l.advance()
		return Token{Kind: TokenComma, Literal: ",", Pos: pos}, nil
	case ';':
		l.advance()
		return Token{Kind: TokenSemicolon, Literal: ";", Pos: pos}, nil
	case '-':
		l.advance()
		return Token{Kind: TokenDash, Literal: "-", Pos: pos}, nil
	case '=':
		l.advance()
		return Token{Kind: TokenEquals, Literal: "=", Pos: pos}, nil
	case '+':
		l.advance()
		return Token{Kind: TokenPlus, Literal: "+", Pos: pos}, nil
	}

	// The triple bond glyph is the one multi-byte token in the notation.
	if hasPrefix(l.src[l.pos:], tripleGlyph) {
		l.pos += len(tripleGlyph)
		l.col++
		return Token{Kind: TokenTriple, Literal: tripleGlyph, Pos: pos}, nil
	}

	if isDigit(ch) {
		return l.scanInteger(), nil
	}

	if isLetter(ch) {
		return l.scanIdentifier(), nil
	}

	r, size := utf8.DecodeRune(l.src[l.pos:])
	l.pos += size
	l.col++
	return Token{}, &LexError{ParseError{
		Message: fmt.Sprintf("unexpected character %q", r),
		Pos:     pos,
	}}
}

func (l *Lexer) scanInteger() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}

	return Token{Kind: TokenInteger, Literal: string(l.src[start:l.pos]), Pos: pos}
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])

	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal, Pos: pos}
	}

	return Token{Kind: TokenIdentifier, Literal: literal, Pos: pos}
}

func hasPrefix(b []byte, s string) bool {
	return len(b) >= len(s) && string(b[:len(s)]) == s
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
