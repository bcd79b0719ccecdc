package molparser

import (
	"fmt"
	"strconv"
)

// Parse parses notation source text into the ordered sequence of atom
// specifications it declares, plus any parse errors encountered.
//
// Parsing is best-effort: a malformed statement is reported and skipped
// up to the next statement boundary, so one bad statement does not hide
// the rest of the document. Statement order is preserved but carries no
// semantic weight beyond diagnostics.
func Parse(src []byte) ([]*AtomSpec, []error) {
	p := &parser{lex: NewLexer(src)}
	p.run()
	return p.specs, p.errs
}

type parser struct {
	lex   *Lexer
	specs []*AtomSpec
	errs  []error
}

func (p *parser) run() {
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			p.errs = append(p.errs, err)
			p.resync()
			continue
		}
		switch tok.Kind {
		case TokenEOF:
			return
		case TokenSemicolon:
			_, _ = p.lex.Next()
			continue
		}

		spec, err := p.parseAtomSpec()
		if err != nil {
			p.errs = append(p.errs, err)
			p.resync()
			continue
		}
		spec.Index = len(p.specs)
		p.specs = append(p.specs, spec)
	}
}

// resync skips tokens up to the next statement boundary: past the
// closing ']' of the current statement, or up to a ';' or EOF.
func (p *parser) resync() {
	depth := 0
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			// The lexer has already advanced past the offending byte.
			continue
		}
		switch tok.Kind {
		case TokenEOF:
			return
		case TokenSemicolon:
			_, _ = p.lex.Next()
			return
		case TokenLBracket:
			depth++
			_, _ = p.lex.Next()
		case TokenRBracket:
			_, _ = p.lex.Next()
			if depth <= 1 {
				return
			}
			depth--
		default:
			_, _ = p.lex.Next()
		}
	}
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   kind.String(),
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
	return tok, nil
}

// parseAtomSpec parses one statement: label charge? '[' conns ']'.
func (p *parser) parseAtomSpec() (*AtomSpec, error) {
	labelTok, err := p.next()
	if err != nil {
		return nil, err
	}
	if labelTok.Kind != TokenIdentifier {
		return nil, &SyntaxError{
			ParseError: ParseError{Pos: labelTok.Pos},
			Expected:   "atom label",
			Got:        fmt.Sprintf("%s (%q)", labelTok.Kind, labelTok.Literal),
		}
	}

	element, err := checkLabel(labelTok)
	if err != nil {
		return nil, err
	}

	spec := &AtomSpec{
		Label:   labelTok.Literal,
		Element: element,
		Pos:     labelTok.Pos,
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenLBrace {
		charge, err := p.parseCharge()
		if err != nil {
			return nil, err
		}
		spec.Charge = charge
	}

	if _, err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}

	// At least one connection clause is required.
	conn, err := p.parseConn()
	if err != nil {
		return nil, err
	}
	spec.Conns = append(spec.Conns, conn)

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenComma {
			break
		}
		_, _ = p.next()

		conn, err := p.parseConn()
		if err != nil {
			return nil, err
		}
		spec.Conns = append(spec.Conns, conn)
	}

	if _, err := p.expect(TokenRBracket); err != nil {
		return nil, err
	}

	return spec, nil
}

// parseCharge parses '{' SIGN NUMBER '}' and returns the signed charge.
func (p *parser) parseCharge() (int, error) {
	_, _ = p.next() // consume '{'

	signTok, err := p.next()
	if err != nil {
		return 0, err
	}
	var sign int
	switch signTok.Kind {
	case TokenPlus:
		sign = 1
	case TokenDash:
		sign = -1
	default:
		return 0, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("malformed charge: expected '+' or '-', got %s (%q)", signTok.Kind, signTok.Literal),
				Pos:     signTok.Pos,
			},
			Expected: "'+' or '-'",
			Got:      fmt.Sprintf("%s (%q)", signTok.Kind, signTok.Literal),
		}
	}

	numTok, err := p.next()
	if err != nil {
		return 0, err
	}
	if numTok.Kind != TokenInteger {
		return 0, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("malformed charge: expected an integer after %q, got %s (%q)", signTok.Literal, numTok.Kind, numTok.Literal),
				Pos:     numTok.Pos,
			},
			Expected: "integer",
			Got:      fmt.Sprintf("%s (%q)", numTok.Kind, numTok.Literal),
		}
	}

	n, err := strconv.Atoi(numTok.Literal)
	if err != nil {
		return 0, &ValueError{ParseError{
			Message: fmt.Sprintf("invalid charge magnitude %q: %v", numTok.Literal, err),
			Pos:     numTok.Pos,
			Cause:   err,
		}}
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return 0, err
	}

	return sign * n, nil
}

// parseConn parses one connection clause:
//
//	conn := DIRECTION ':' bondsym? ':' label?
//
// 'direction::' is a lone pair; direction, bond symbol, and target
// label together form a bond. Any other shape is malformed.
func (p *parser) parseConn() (Connection, error) {
	dirTok, err := p.next()
	if err != nil {
		return Connection{}, err
	}
	dir, ok := directionTokens[dirTok.Kind]
	if !ok {
		if dirTok.Kind == TokenIdentifier {
			return Connection{}, &SyntaxError{
				ParseError: ParseError{
					Message: fmt.Sprintf("unrecognized direction keyword %q", dirTok.Literal),
					Pos:     dirTok.Pos,
				},
				Expected: "'left', 'right', 'above', or 'below'",
				Got:      fmt.Sprintf("%q", dirTok.Literal),
			}
		}
		return Connection{}, &SyntaxError{
			ParseError: ParseError{Pos: dirTok.Pos},
			Expected:   "direction keyword",
			Got:        fmt.Sprintf("%s (%q)", dirTok.Kind, dirTok.Literal),
		}
	}

	if _, err := p.expect(TokenColon); err != nil {
		return Connection{}, err
	}

	tok, err := p.peek()
	if err != nil {
		return Connection{}, err
	}

	if bt, ok := bondTokens[tok.Kind]; ok {
		_, _ = p.next()
		if _, err := p.expect(TokenColon); err != nil {
			return Connection{}, err
		}
		targetTok, err := p.next()
		if err != nil {
			return Connection{}, err
		}
		if targetTok.Kind != TokenIdentifier {
			return Connection{}, &SyntaxError{
				ParseError: ParseError{
					Message: fmt.Sprintf("bond clause %q is missing its target atom label", dirTok.Literal),
					Pos:     targetTok.Pos,
				},
				Expected: "target atom label",
				Got:      fmt.Sprintf("%s (%q)", targetTok.Kind, targetTok.Literal),
			}
		}
		if _, err := checkLabel(targetTok); err != nil {
			return Connection{}, err
		}
		return Connection{
			Dir:    dir,
			Kind:   ConnBond,
			Bond:   bt,
			Target: targetTok.Literal,
			Pos:    dirTok.Pos,
		}, nil
	}

	switch tok.Kind {
	case TokenColon:
		_, _ = p.next()
		// 'direction::' with trailing text is a bond missing its symbol.
		after, err := p.peek()
		if err != nil {
			return Connection{}, err
		}
		if after.Kind == TokenIdentifier {
			return Connection{}, &SyntaxError{
				ParseError: ParseError{
					Message: fmt.Sprintf("connection %q names target %q but has no bond symbol", dirTok.Literal, after.Literal),
					Pos:     after.Pos,
				},
				Expected: "',' or ']'",
				Got:      fmt.Sprintf("%s (%q)", after.Kind, after.Literal),
			}
		}
		return Connection{Dir: dir, Kind: ConnLonePair, Pos: dirTok.Pos}, nil

	case TokenIdentifier:
		_, _ = p.next()
		return Connection{}, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("unrecognized bond symbol %q; bonds are '-', '=', or '≡'", tok.Literal),
				Pos:     tok.Pos,
			},
			Expected: "bond symbol",
			Got:      fmt.Sprintf("%q", tok.Literal),
		}

	default:
		return Connection{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "bond symbol or ':'",
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
}

// checkLabel validates an atom label token against the label shape
// [A-Z][a-z]?[0-9]* and the element symbol table. Returns the element
// symbol portion.
func checkLabel(tok Token) (string, error) {
	element, suffix, ok := SplitLabel(tok.Literal)
	if !ok {
		return "", &ValueError{ParseError{
			Message: fmt.Sprintf("malformed atom label %q: want an element symbol with an optional number", tok.Literal),
			Pos:     tok.Pos,
		}}
	}
	if !IsElement(element) {
		return "", &ValueError{ParseError{
			Message: fmt.Sprintf("unrecognized element symbol %q in label %q", element, tok.Literal),
			Pos:     tok.Pos,
		}}
	}
	if suffix != "" && suffix[0] == '0' {
		return "", &ValueError{ParseError{
			Message: fmt.Sprintf("label %q: numeric suffix must be a positive integer", tok.Literal),
			Pos:     tok.Pos,
		}}
	}
	return element, nil
}
