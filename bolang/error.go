package bolang

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Error is the single diagnostic of a failed scan or parse.
// Pos is a rune index into the source text.
type Error struct {
	Message string
	Pos     int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d", e.Message, e.Pos)
}

type Rendered struct {
	LineNumber int
	Message    string
	SourceLine string
	CaretLine  string
}

func (r Rendered) String() string {
	return fmt.Sprintf("Error on line %d\n%s\n%s\n%s", r.LineNumber, r.Message, r.SourceLine, r.CaretLine)
}

type RenderOptions struct {
	// Fill pads the caret line, '-' if zero
	Fill rune
}

func (e *Error) Render(src string) Rendered {
	return RenderOptions{}.Render(e, src)
}

func (o RenderOptions) Render(e *Error, src string) Rendered {
	fill := o.Fill
	if fill == 0 {
		fill = '-'
	}

	runes := []rune(src)
	pos := min(max(e.Pos, 0), len(runes))

	lineNumber := 1
	lineStart := 0
	for i := 0; i < pos; i++ {
		if runes[i] == '\n' {
			lineNumber++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(runes) && runes[lineEnd] != '\n' {
		lineEnd++
	}
	line := runes[lineStart:lineEnd]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}

	column := min(pos-lineStart, len(line))
	var caret strings.Builder
	width := 0
	for _, r := range line[:column] {
		if r == '\t' {
			caret.WriteRune('\t')
			width++
			continue
		}
		w := runewidth.RuneWidth(r)
		for range w {
			caret.WriteRune(fill)
		}
		width += w
	}
	caret.WriteRune('^')
	width++
	for lineWidth := displayWidth(line); width < lineWidth; width++ {
		caret.WriteRune(fill)
	}

	return Rendered{
		LineNumber: lineNumber,
		Message:    e.Message,
		SourceLine: string(line),
		CaretLine:  caret.String(),
	}
}

func displayWidth(line []rune) (ret int) {
	for _, r := range line {
		if r == '\t' {
			ret++
			continue
		}
		ret += runewidth.RuneWidth(r)
	}
	return
}
