package molparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdentifier // [A-Za-z][A-Za-z0-9]*
	TokenInteger    // [0-9]+
	TokenDash       // - (single bond, or minus sign inside a charge clause)
	TokenEquals     // = (double bond)
	TokenTriple     // ≡ (triple bond)
	TokenPlus       // + (plus sign inside a charge clause)
	TokenColon      // :
	TokenComma      // ,
	TokenSemicolon  // ;
	TokenLBracket   // [
	TokenRBracket   // ]
	TokenLBrace     // {
	TokenRBrace     // }

	// Direction keywords (identifier text checked against keyword map)
	TokenLeft  // left
	TokenRight // right
	TokenAbove // above
	TokenBelow // below
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "identifier",
	TokenInteger:    "integer",
	TokenDash:       "'-'",
	TokenEquals:     "'='",
	TokenTriple:     "'≡'",
	TokenPlus:       "'+'",
	TokenColon:      "':'",
	TokenComma:      "','",
	TokenSemicolon:  "';'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenLeft:       "'left'",
	TokenRight:      "'right'",
	TokenAbove:      "'above'",
	TokenBelow:      "'below'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}

// keywords maps direction keywords to their token kinds. Direction
// keywords are case-sensitive; "Left" or "LEFT" lex as plain identifiers.
var keywords = map[string]TokenKind{
	"left":  TokenLeft,
	"right": TokenRight,
	"above": TokenAbove,
	"below": TokenBelow,
}

// directionTokens maps direction token kinds to their Direction value.
var directionTokens = map[TokenKind]Direction{
	TokenLeft:  DirLeft,
	TokenRight: DirRight,
	TokenAbove: DirAbove,
	TokenBelow: DirBelow,
}

// bondTokens maps bond glyph token kinds to their BondType value.
var bondTokens = map[TokenKind]BondType{
	TokenDash:   BondSingle,
	TokenEquals: BondDouble,
	TokenTriple: BondTriple,
}
