package bolang

type Op uint8

const (
	OpInvalid Op = iota
	OpPlus
	OpPlusEqual
	OpMinus
	OpMinusEqual
	OpStar
	OpStarEqual
	OpSlash
	OpSlashEqual
	OpPercent
	OpPercentEqual
	OpBang
	OpBangEqual
	OpEqual
	OpEqualEqual
	OpLess
	OpLessEqual
	OpLessLess
	OpGreater
	OpGreaterEqual
	OpGreaterGreater
	OpCaret
	OpCaretEqual
	OpTilde
	OpTildeEqual
	OpColon
	OpColonColon
	OpSemicolon
	OpDot
	OpDotDot
	OpPipe
	OpPipePipe
	OpPipeEqual
	OpAmp
	OpAmpAmp
	OpAmpEqual
	OpComma
	OpLeftParen
	OpRightParen
	OpLeftBracket
	OpRightBracket
	OpLeftBrace
	OpRightBrace
)

var opSpellings = [...]string{
	OpInvalid:        "<invalid>",
	OpPlus:           "+",
	OpPlusEqual:      "+=",
	OpMinus:          "-",
	OpMinusEqual:     "-=",
	OpStar:           "*",
	OpStarEqual:      "*=",
	OpSlash:          "/",
	OpSlashEqual:     "/=",
	OpPercent:        "%",
	OpPercentEqual:   "%=",
	OpBang:           "!",
	OpBangEqual:      "!=",
	OpEqual:          "=",
	OpEqualEqual:     "==",
	OpLess:           "<",
	OpLessEqual:      "<=",
	OpLessLess:       "<<",
	OpGreater:        ">",
	OpGreaterEqual:   ">=",
	OpGreaterGreater: ">>",
	OpCaret:          "^",
	OpCaretEqual:     "^=",
	OpTilde:          "~",
	OpTildeEqual:     "~=",
	OpColon:          ":",
	OpColonColon:     "::",
	OpSemicolon:      ";",
	OpDot:            ".",
	OpDotDot:         "..",
	OpPipe:           "|",
	OpPipePipe:       "||",
	OpPipeEqual:      "|=",
	OpAmp:            "&",
	OpAmpAmp:         "&&",
	OpAmpEqual:       "&=",
	OpComma:          ",",
	OpLeftParen:      "(",
	OpRightParen:     ")",
	OpLeftBracket:    "[",
	OpRightBracket:   "]",
	OpLeftBrace:      "{",
	OpRightBrace:     "}",
}

func (o Op) String() string {
	if int(o) < len(opSpellings) {
		return opSpellings[o]
	}
	return opSpellings[OpInvalid]
}

// opForm is one spelling that extends a leading symbol.
type opForm struct {
	next rune
	op   Op
}

// opTable maps a leading symbol to its bare operator and its two-rune extensions.
// Every multi-rune operator is exactly two runes long, so trying the extensions before
// the bare form is a longest match.
var opTable = map[rune]struct {
	bare  Op
	forms []opForm
}{
	'+': {OpPlus, []opForm{{'=', OpPlusEqual}}},
	'-': {OpMinus, []opForm{{'=', OpMinusEqual}}},
	'*': {OpStar, []opForm{{'=', OpStarEqual}}},
	'/': {OpSlash, []opForm{{'=', OpSlashEqual}}},
	'%': {OpPercent, []opForm{{'=', OpPercentEqual}}},
	'!': {OpBang, []opForm{{'=', OpBangEqual}}},
	'=': {OpEqual, []opForm{{'=', OpEqualEqual}}},
	'<': {OpLess, []opForm{{'=', OpLessEqual}, {'<', OpLessLess}}},
	'>': {OpGreater, []opForm{{'=', OpGreaterEqual}, {'>', OpGreaterGreater}}},
	'^': {OpCaret, []opForm{{'=', OpCaretEqual}}},
	'~': {OpTilde, []opForm{{'=', OpTildeEqual}}},
	':': {OpColon, []opForm{{':', OpColonColon}}},
	'.': {OpDot, []opForm{{'.', OpDotDot}}},
	'|': {OpPipe, []opForm{{'|', OpPipePipe}, {'=', OpPipeEqual}}},
	'&': {OpAmp, []opForm{{'&', OpAmpAmp}, {'=', OpAmpEqual}}},
	';': {bare: OpSemicolon},
	',': {bare: OpComma},
	'(': {bare: OpLeftParen},
	')': {bare: OpRightParen},
	'[': {bare: OpLeftBracket},
	']': {bare: OpRightBracket},
	'{': {bare: OpLeftBrace},
	'}': {bare: OpRightBrace},
}
