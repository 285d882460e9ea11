package reports

import (
	"io"
	"os"

	"github.com/reusee/bo/boconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs boconfigs.Module
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stderr
}
