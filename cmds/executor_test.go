package cmds

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestFallback(t *testing.T) {
	executor := NewExecutor()
	var verbose bool
	executor.Define("-v", Func(func() {
		verbose = true
	}))
	var files []string
	executor.Fallback(func(arg string) error {
		if arg == "bad" {
			return errors.New("bad file")
		}
		files = append(files, arg)
		return nil
	})

	if err := executor.Execute([]string{"a.bo", "-v", "b.bo"}); err != nil {
		t.Fatal(err)
	}
	if !verbose {
		t.Fatal()
	}
	if strings.Join(files, ",") != "a.bo,b.bo" {
		t.Fatalf("got %v", files)
	}

	err := executor.Execute([]string{"-x"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -x") {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"bad"})
	if err == nil || err.Error() != "bad file" {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errors.New("failed")
	}))
	executor.Define("int", Func(func(i int) {}))
	err := executor.Execute([]string{"fail"})
	if err == nil || err.Error() != "fail: failed" {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"int", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func() {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	buf := new(bytes.Buffer)
	executor.Usage(buf)
	usage := buf.String()
	for _, expected := range []string{
		"--help, -h, -help, help\tprint this usage",
		"foo\tFOO",
		"  bar\tBAR",
		"    qux\tQUX",
	} {
		if !strings.Contains(usage, expected) {
			t.Fatalf("got %s", usage)
		}
	}
}
