package bolang

import (
	"slices"
	"strconv"
	"strings"
)

// Value is a literal value. Variants: Int, Float, Bool, String, Array, Dict, Function.
type Value interface {
	value()
	String() string
}

type Int int64

type Float float64

type Bool bool

type String string

type Array []Value

type Dict map[string]Value

// Function is an index into compiled code. The frontend never produces one.
type Function int

func (Int) value()      {}
func (Float) value()    {}
func (Bool) value()     {}
func (String) value()   {}
func (Array) value()    {}
func (Dict) value()     {}
func (Function) value() {}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (s String) String() string {
	return `"` + string(s) + `"`
}

func (a Array) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (d Dict) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteString(": ")
		sb.WriteString(d[k].String())
	}
	sb.WriteString("}")
	return sb.String()
}

func (f Function) String() string {
	return "function#" + strconv.Itoa(int(f))
}
