package debugs

import (
	"github.com/reusee/bo/bolang"
	"github.com/reusee/bo/dumps"
)

// Globals are the names visible in a tap: name, source, tokens, module and parse.
// parse returns the s-expression dump of a snippet or its rendered error.
func Globals(src *bolang.Source, tokens []bolang.Token, module *bolang.Module) map[string]any {
	ret := map[string]any{
		"name":   src.Name,
		"source": src.Content,
		"tokens": tokens,
		"parse": func(text string) string {
			snippet := bolang.NewSource("<tap>", text)
			module, err := snippet.Parse(bolang.Options{})
			if err != nil {
				if rendered, ok := snippet.Render(err, bolang.RenderOptions{}); ok {
					return rendered.String()
				}
				return err.Error()
			}
			return dumps.Text(module)
		},
	}
	if module != nil {
		ret["module"] = module
	}
	return ret
}
