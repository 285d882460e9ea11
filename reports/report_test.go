package reports

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/bo/bolang"
	"github.com/reusee/bo/configs"
	"github.com/reusee/bo/logs"
	"github.com/reusee/bo/modes"
	"github.com/reusee/dscope"
)

func TestPrint(t *testing.T) {
	src := bolang.NewSource("a.bo", "let a = 1;\nlet b = 2")
	_, err := src.Parse(bolang.Options{})
	buf := new(bytes.Buffer)
	Printer{Fill: '_'}.Print(buf, src, err)
	expected := "a.bo: Error on line 2\nExpected semicolon\nlet b = 2\n________^\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	Printer{}.Print(buf, src, errors.New("read failed"))
	if buf.String() != "a.bo: read failed\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPrintColor(t *testing.T) {
	src := bolang.NewSource("a.bo", `"abc`)
	_, err := src.Scan()
	buf := new(bytes.Buffer)
	Printer{Color: true}.Print(buf, src, err)
	for _, expected := range []string{"Error on line 1", "Unclosed string", `"abc`, "^---"} {
		if !strings.Contains(buf.String(), expected) {
			t.Fatalf("got %q", buf.String())
		}
	}
}

func TestReport(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Output {
			return buf
		},
		func() logs.Writer {
			return io.Discard
		},
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	).Call(func(
		report Report,
	) {
		src := bolang.NewSource("b.bo", "@")
		_, err := src.Scan()
		report(src, err)
	})
	if !strings.Contains(buf.String(), "Unexpected character") {
		t.Fatalf("got %q", buf.String())
	}
}
