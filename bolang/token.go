package bolang

import "fmt"

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenOp
	TokenKeyword
	TokenLiteral
	TokenIdentifier
)

func (k TokenKind) String() string {
	switch k {
	case TokenOp:
		return "operator"
	case TokenKeyword:
		return "keyword"
	case TokenLiteral:
		return "literal"
	case TokenIdentifier:
		return "identifier"
	}
	return "invalid"
}

// Token is one lexical unit. Only the field matching Kind is set.
// Pos is the rune index of the token's first character in the source.
type Token struct {
	Kind    TokenKind
	Op      Op
	Keyword Keyword
	Value   Value
	Text    string
	Pos     int
}

func (t Token) IsOp(op Op) bool {
	return t.Kind == TokenOp && t.Op == op
}

func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == TokenKeyword && t.Keyword == kw
}

func (t Token) String() string {
	switch t.Kind {
	case TokenOp:
		return t.Op.String()
	case TokenKeyword:
		return t.Keyword.String()
	case TokenLiteral:
		return t.Value.String()
	case TokenIdentifier:
		return t.Text
	}
	return fmt.Sprintf("<invalid token at %d>", t.Pos)
}
