package boconfigs

import (
	"github.com/reusee/bo/configs"
)

type CaretFill rune

func (Module) CaretFill(
	loader configs.Loader,
) CaretFill {
	for _, r := range mustFirst[string](loader, "caret_fill") {
		return CaretFill(r)
	}
	return '-'
}
