package boconfigs

import (
	"errors"
	"os"

	"github.com/reusee/bo/cmds"
	"github.com/reusee/bo/configs"
)

type Color bool

var noColorFlag = cmds.Switch("-no-color")

func (Module) Color(
	loader configs.Loader,
) Color {
	if *noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	var color bool
	if err := loader.AssignFirst("color", &color); err != nil {
		if errors.Is(err, configs.ErrValueNotFound) {
			return true
		}
		panic(err)
	}
	return Color(color)
}
