package bolang

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
	}{
		{
			input: "let a = 5;",
			tokens: []Token{
				{Kind: TokenKeyword, Keyword: KeywordLet, Pos: 0},
				{Kind: TokenIdentifier, Text: "a", Pos: 4},
				{Kind: TokenOp, Op: OpEqual, Pos: 6},
				{Kind: TokenLiteral, Value: Int(5), Pos: 8},
				{Kind: TokenOp, Op: OpSemicolon, Pos: 9},
			},
		},
		{
			input: `"abc"`,
			tokens: []Token{
				{Kind: TokenLiteral, Value: String("abc")},
			},
		},
		{
			input: `""`,
			tokens: []Token{
				{Kind: TokenLiteral, Value: String("")},
			},
		},
		{
			input: `"a\nb"`,
			tokens: []Token{
				{Kind: TokenLiteral, Value: String(`a\nb`)},
			},
		},
		{
			input: "123",
			tokens: []Token{
				{Kind: TokenLiteral, Value: Int(123)},
			},
		},
		{
			input: "123.5",
			tokens: []Token{
				{Kind: TokenLiteral, Value: Float(123.5)},
			},
		},
		{
			input: "1.",
			tokens: []Token{
				{Kind: TokenLiteral, Value: Int(1)},
				{Kind: TokenOp, Op: OpDot, Pos: 1},
			},
		},
		{
			input: "1..2",
			tokens: []Token{
				{Kind: TokenLiteral, Value: Int(1)},
				{Kind: TokenOp, Op: OpDotDot, Pos: 1},
				{Kind: TokenLiteral, Value: Int(2), Pos: 3},
			},
		},
		{
			input: "true false",
			tokens: []Token{
				{Kind: TokenLiteral, Value: Bool(true)},
				{Kind: TokenLiteral, Value: Bool(false), Pos: 5},
			},
		},
		{
			input: "truex _x a_b1",
			tokens: []Token{
				{Kind: TokenIdentifier, Text: "truex"},
				{Kind: TokenIdentifier, Text: "_x", Pos: 6},
				{Kind: TokenIdentifier, Text: "a_b1", Pos: 9},
			},
		},
		{
			input: "12ab",
			tokens: []Token{
				{Kind: TokenLiteral, Value: Int(12)},
				{Kind: TokenIdentifier, Text: "ab", Pos: 2},
			},
		},
		{
			input: "loop{};",
			tokens: []Token{
				{Kind: TokenKeyword, Keyword: KeywordLoop},
				{Kind: TokenOp, Op: OpLeftBrace, Pos: 4},
				{Kind: TokenOp, Op: OpRightBrace, Pos: 5},
				{Kind: TokenOp, Op: OpSemicolon, Pos: 6},
			},
		},
	}

	for _, test := range tests {
		tokens, err := Scan(test.input)
		if err != nil {
			t.Fatalf("%s: %v", test.input, err)
		}
		if !reflect.DeepEqual(tokens, test.tokens) {
			t.Fatalf("%s: got %v", test.input, tokens)
		}
	}
}

func TestScanWhitespace(t *testing.T) {
	for _, input := range []string{
		"",
		" ",
		"\t\n\r\f",
		"   \n\n  ",
	} {
		tokens, err := Scan(input)
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 0 {
			t.Fatalf("%q: got %v", input, tokens)
		}
	}
}

func TestScanOps(t *testing.T) {
	for op := OpPlus; op <= OpRightBrace; op++ {
		spelling := op.String()
		tokens, err := Scan(spelling)
		if err != nil {
			t.Fatalf("%s: %v", spelling, err)
		}
		if len(tokens) != 1 {
			t.Fatalf("%s: got %v", spelling, tokens)
		}
		if !tokens[0].IsOp(op) {
			t.Fatalf("%s: got %v", spelling, tokens[0].Op)
		}
	}
}

func TestScanLongestOp(t *testing.T) {
	tests := []struct {
		input string
		ops   []Op
	}{
		{"<<", []Op{OpLessLess}},
		{"<<<", []Op{OpLessLess, OpLess}},
		{"<=<", []Op{OpLessEqual, OpLess}},
		{"< <", []Op{OpLess, OpLess}},
		{">>=", []Op{OpGreaterGreater, OpEqual}},
		{"===", []Op{OpEqualEqual, OpEqual}},
		{"||=", []Op{OpPipePipe, OpEqual}},
		{"&&&", []Op{OpAmpAmp, OpAmp}},
		{"...", []Op{OpDotDot, OpDot}},
		{":::", []Op{OpColonColon, OpColon}},
		{"!a", []Op{OpBang}},
		{"-1", []Op{OpMinus}},
	}
	for _, test := range tests {
		tokens, err := Scan(test.input)
		if err != nil {
			t.Fatal(err)
		}
		var ops []Op
		for _, tok := range tokens {
			if tok.Kind == TokenOp {
				ops = append(ops, tok.Op)
			}
		}
		if !reflect.DeepEqual(ops, test.ops) {
			t.Fatalf("%s: got %v", test.input, ops)
		}
	}
}

func TestScanKeywords(t *testing.T) {
	for kw := KeywordLet; kw <= KeywordReturn; kw++ {
		tokens, err := Scan(kw.String())
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 1 || !tokens[0].IsKeyword(kw) {
			t.Fatalf("%s: got %v", kw, tokens)
		}
		tokens, err = Scan(kw.String() + "s")
		if err != nil {
			t.Fatal(err)
		}
		if len(tokens) != 1 || tokens[0].Kind != TokenIdentifier {
			t.Fatalf("%ss: got %v", kw, tokens)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
		pos     int
	}{
		{`"abc`, "Unclosed string", 0},
		{`let a = "abc`, "Unclosed string", 8},
		{"let a = 5 @", "Unexpected character", 10},
		{"#", "Unexpected character", 0},
		{"\u00a0", "Unexpected character", 0},
		{"let s = \"é\"; $", "Unexpected character", 13},
		{"99999999999999999999", "Invalid number literal", 0},
		{"1 + 99999999999999999999", "Invalid number literal", 4},
		{"a\xffb", "Unexpected character", 1},
		{"\"a\xffb\"", "Unexpected character", 2},
		{"let s = \"é\"; \xff", "Unexpected character", 13},
		{"@ \xff", "Unexpected character", 0},
	}
	for _, test := range tests {
		tokens, err := Scan(test.input)
		if tokens != nil {
			t.Fatalf("%s: got %v", test.input, tokens)
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("%s: got %v", test.input, err)
		}
		if e.Message != test.message {
			t.Fatalf("%s: got %q", test.input, e.Message)
		}
		if e.Pos != test.pos {
			t.Fatalf("%s: got %d", test.input, e.Pos)
		}
	}
}

func TestScanReplacementCharacter(t *testing.T) {
	tokens, err := Scan("\"\uFFFD\"")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Value != String("\uFFFD") {
		t.Fatalf("got %v", tokens)
	}
}

func TestSourceLiteral(t *testing.T) {
	src := &Source{
		Name:    "literal",
		Content: "let a = 5",
	}
	tokens, err := src.Scan()
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 4 {
		t.Fatalf("got %v", tokens)
	}
	if got := src.Slice(4); got != "a = 5" {
		t.Fatalf("got %q", got)
	}
	_, err = src.Parse(Options{})
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Message != "Expected semicolon" || e.Pos != 8 {
		t.Fatalf("got %v", e)
	}

	_, err = (&Source{Content: "a\xff"}).Scan()
	if !errors.As(err, &e) || e.Pos != 1 {
		t.Fatalf("got %v", err)
	}
}

func TestScanFirstErrorWins(t *testing.T) {
	_, err := Scan(`@ "abc`)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Message != "Unexpected character" || e.Pos != 0 {
		t.Fatalf("got %v", e)
	}
}

func TestScanPositionsSliceSource(t *testing.T) {
	src := NewSource("test", "let π = 3.14;\nif true { return \"ü\"; } else { loop {}; };")
	tokens, err := src.Scan()
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range tokens {
		rest := src.Slice(tok.Pos)
		var prefix string
		switch tok.Kind {
		case TokenLiteral:
			switch v := tok.Value.(type) {
			case String:
				prefix = `"` + string(v)
			case Float:
				prefix = "3.14"
			default:
				prefix = v.String()
			}
		default:
			prefix = tok.String()
		}
		if !strings.HasPrefix(rest, prefix) {
			t.Fatalf("token %v at %d: got %q", tok, tok.Pos, rest)
		}
	}
}
