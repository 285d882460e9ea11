package frontends

import (
	"github.com/reusee/bo/boconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs boconfigs.Module
}
