package bolang

import "errors"

type Source struct {
	Name    string
	Content string
	runes   []rune
	invalid int
}

// NewSource decodes content once. A Source literal works too, decoding on every use.
func NewSource(name string, content string) *Source {
	runes, invalid := decodeRunes(content)
	return &Source{
		Name:    name,
		Content: content,
		runes:   runes,
		invalid: invalid,
	}
}

func (s *Source) decoded() ([]rune, int) {
	if s.runes == nil {
		return decodeRunes(s.Content)
	}
	return s.runes, s.invalid
}

func (s *Source) Scan() ([]Token, error) {
	return scanRunes(s.decoded())
}

func (s *Source) Parse(options Options) (*Module, error) {
	tokens, err := s.Scan()
	if err != nil {
		return nil, err
	}
	return options.Parse(tokens)
}

// Slice returns the text starting at rune index pos.
func (s *Source) Slice(pos int) string {
	runes, _ := s.decoded()
	if pos < 0 || pos > len(runes) {
		return ""
	}
	return string(runes[pos:])
}

// Render renders err against the source if it is a frontend error.
func (s *Source) Render(err error, options RenderOptions) (Rendered, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return Rendered{}, false
	}
	return options.Render(e, s.Content), true
}
