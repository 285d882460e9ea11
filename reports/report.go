package reports

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/bo/boconfigs"
	"github.com/reusee/bo/bolang"
)

// Report writes err for the source unit. Frontend errors are rendered against the source.
type Report func(src *bolang.Source, err error)

type Printer struct {
	Color bool
	Fill  rune
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	messageStyle = lipgloss.NewStyle().Bold(true)
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	nameStyle    = lipgloss.NewStyle().Faint(true)
)

func (p Printer) Print(w io.Writer, src *bolang.Source, err error) {
	rendered, ok := src.Render(err, bolang.RenderOptions{
		Fill: p.Fill,
	})
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", src.Name, err)
		return
	}

	name := src.Name + ":"
	title := fmt.Sprintf("Error on line %d", rendered.LineNumber)
	message := rendered.Message
	caret := rendered.CaretLine
	if p.Color {
		name = nameStyle.Render(name)
		title = titleStyle.Render(title)
		message = messageStyle.Render(message)
		caret = caretStyle.Render(caret)
	}
	fmt.Fprintf(w, "%s %s\n%s\n%s\n%s\n", name, title, message, rendered.SourceLine, caret)
}

func (Module) Report(
	output Output,
	color boconfigs.Color,
	fill boconfigs.CaretFill,
) Report {
	printer := Printer{
		Color: bool(color),
		Fill:  rune(fill),
	}
	return func(src *bolang.Source, err error) {
		printer.Print(output, src, err)
	}
}
