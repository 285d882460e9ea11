package bolang

type Keyword uint8

const (
	KeywordInvalid Keyword = iota
	KeywordLet
	KeywordPub
	KeywordStruct
	KeywordImport
	KeywordFrom
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordLoop
	KeywordBreak
	KeywordContinue
	KeywordReturn
)

var keywordSpellings = [...]string{
	KeywordInvalid:  "<invalid>",
	KeywordLet:      "let",
	KeywordPub:      "pub",
	KeywordStruct:   "struct",
	KeywordImport:   "import",
	KeywordFrom:     "from",
	KeywordIf:       "if",
	KeywordElse:     "else",
	KeywordWhile:    "while",
	KeywordLoop:     "loop",
	KeywordBreak:    "break",
	KeywordContinue: "continue",
	KeywordReturn:   "return",
}

var keywords = func() map[string]Keyword {
	ret := make(map[string]Keyword, len(keywordSpellings))
	for kw, spelling := range keywordSpellings {
		if Keyword(kw) == KeywordInvalid {
			continue
		}
		ret[spelling] = Keyword(kw)
	}
	return ret
}()

func (k Keyword) String() string {
	if int(k) < len(keywordSpellings) {
		return keywordSpellings[k]
	}
	return keywordSpellings[KeywordInvalid]
}

// LookupKeyword reports the keyword spelled exactly as text.
func LookupKeyword(text string) (Keyword, bool) {
	kw, ok := keywords[text]
	return kw, ok
}
