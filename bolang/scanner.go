package bolang

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type scanner struct {
	src     []rune
	invalid int
	start   int
	current int
	tokens  []Token
}

// Scan converts source text into tokens. On failure it returns the first error only.
// Bytes that are not valid UTF-8 are unexpected characters.
func Scan(src string) ([]Token, error) {
	return scanRunes(decodeRunes(src))
}

// decodeRunes returns the runes of src and the rune index of its first invalid byte, or -1.
// Each invalid byte counts as one rune.
func decodeRunes(src string) (runes []rune, invalid int) {
	invalid = -1
	runes = make([]rune, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size == 1 && invalid < 0 {
			invalid = len(runes)
		}
		runes = append(runes, r)
		i += size
	}
	return
}

var recognizers = [...]func(*scanner) (bool, error){
	(*scanner).scanOp,
	(*scanner).scanNumber,
	(*scanner).scanString,
	(*scanner).scanIdentifier,
}

func scanRunes(src []rune, invalid int) ([]Token, error) {
	s := &scanner{
		src:     src,
		invalid: invalid,
	}

scan:
	for !s.atEnd() {
		s.start = s.current
		if s.current == s.invalid {
			return nil, s.fail("Unexpected character")
		}
		if isSpace(s.peek()) {
			s.current++
			continue
		}
		for _, recognize := range recognizers {
			ok, err := recognize(s)
			if err != nil {
				return nil, err
			}
			if ok {
				continue scan
			}
		}
		return nil, s.fail("Unexpected character")
	}

	return s.tokens, nil
}

func (s *scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *scanner) peek() rune {
	return s.src[s.current]
}

func (s *scanner) peekAt(offset int) (rune, bool) {
	i := s.current + offset
	if i >= len(s.src) {
		return 0, false
	}
	return s.src[i], true
}

func (s *scanner) emit(token Token) {
	token.Pos = s.start
	s.tokens = append(s.tokens, token)
}

func (s *scanner) emitLiteral(value Value) {
	s.emit(Token{
		Kind:  TokenLiteral,
		Value: value,
	})
}

func (s *scanner) fail(message string) *Error {
	return s.failAt(s.start, message)
}

func (s *scanner) failAt(pos int, message string) *Error {
	return &Error{
		Message: message,
		Pos:     pos,
	}
}

func (s *scanner) scanOp() (bool, error) {
	entry, ok := opTable[s.peek()]
	if !ok {
		return false, nil
	}
	s.current++
	op := entry.bare
	if next, ok := s.peekAt(0); ok {
		for _, form := range entry.forms {
			if form.next == next {
				op = form.op
				s.current++
				break
			}
		}
	}
	s.emit(Token{
		Kind: TokenOp,
		Op:   op,
	})
	return true, nil
}

func (s *scanner) scanNumber() (bool, error) {
	if !isDigit(s.peek()) {
		return false, nil
	}
	s.skipDigits()

	isFloat := false
	if dot, ok := s.peekAt(0); ok && dot == '.' {
		// "1..2" and "1.x" leave the dot to the operator scanner
		if r, ok := s.peekAt(1); ok && isDigit(r) {
			isFloat = true
			s.current++
			s.skipDigits()
		}
	}

	text := string(s.src[s.start:s.current])
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return false, s.fail("Invalid number literal")
		}
		s.emitLiteral(Float(f))
		return true, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return false, s.fail("Invalid number literal")
	}
	s.emitLiteral(Int(i))
	return true, nil
}

func (s *scanner) skipDigits() {
	for !s.atEnd() && isDigit(s.peek()) {
		s.current++
	}
}

func (s *scanner) scanString() (bool, error) {
	if s.peek() != '"' {
		return false, nil
	}
	s.current++
	for !s.atEnd() && s.peek() != '"' {
		if s.current == s.invalid {
			return false, s.failAt(s.current, "Unexpected character")
		}
		s.current++
	}
	if s.atEnd() {
		return false, s.fail("Unclosed string")
	}
	text := string(s.src[s.start+1 : s.current])
	s.current++
	s.emitLiteral(String(text))
	return true, nil
}

func (s *scanner) scanIdentifier() (bool, error) {
	if r := s.peek(); r != '_' && !unicode.IsLetter(r) {
		return false, nil
	}
	for !s.atEnd() && isIdentRune(s.peek()) {
		s.current++
	}

	text := string(s.src[s.start:s.current])
	switch text {
	case "true":
		s.emitLiteral(Bool(true))
		return true, nil
	case "false":
		s.emitLiteral(Bool(false))
		return true, nil
	}
	if kw, ok := LookupKeyword(text); ok {
		s.emit(Token{
			Kind:    TokenKeyword,
			Keyword: kw,
		})
		return true, nil
	}
	s.emit(Token{
		Kind: TokenIdentifier,
		Text: text,
	})
	return true, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
