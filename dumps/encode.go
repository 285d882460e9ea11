package dumps

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bo/bolang"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func ParseFormat(str string) (Format, error) {
	switch format := Format(strings.ToLower(str)); format {
	case FormatText, FormatYAML, FormatJSON:
		return format, nil
	}
	return "", fmt.Errorf("unknown dump format: %s", str)
}

func Encode(w io.Writer, format Format, v any) error {
	switch format {

	case FormatText, "":
		_, err := io.WriteString(w, Text(v))
		return err

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(Tree(v)); err != nil {
			return err
		}
		return encoder.Close()

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(Tree(v))

	}
	return fmt.Errorf("unknown dump format: %s", format)
}

// Text renders one s-expression per line for modules and tokens.
func Text(v any) string {
	var sb strings.Builder
	switch v := v.(type) {
	case *bolang.Module:
		for _, stmt := range v.Stmts {
			sb.WriteString(sexp(Tree(stmt)))
			sb.WriteString("\n")
		}
	case []bolang.Token:
		for _, tok := range v {
			fmt.Fprintf(&sb, "%d\t%s\t%s\n", tok.Pos, tok.Kind, tok)
		}
	default:
		sb.WriteString(sexp(Tree(v)))
		sb.WriteString("\n")
	}
	return sb.String()
}

var fieldOrder = []string{"name", "op", "target", "cond", "x", "y", "value", "then", "else", "body", "stmts", "elems"}

func sexp(tree any) string {
	switch tree := tree.(type) {
	case map[string]any:
		kind, ok := tree["kind"].(string)
		if !ok {
			break
		}
		if kind == "literal" {
			return sexp(tree["value"])
		}
		parts := []string{kind}
		for _, field := range fieldOrder {
			value, ok := tree[field]
			if !ok {
				continue
			}
			if field == "name" || field == "op" {
				parts = append(parts, fmt.Sprint(value))
				continue
			}
			if list, ok := value.([]any); ok {
				for _, elem := range list {
					parts = append(parts, sexp(elem))
				}
				continue
			}
			parts = append(parts, sexp(value))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case string:
		return fmt.Sprintf("%q", tree)
	case float64:
		return bolang.Float(tree).String()
	case []any:
		parts := make([]string, 0, len(tree))
		for _, elem := range tree {
			parts = append(parts, sexp(elem))
		}
		return "[" + strings.Join(parts, " ") + "]"
	}
	return fmt.Sprint(tree)
}
