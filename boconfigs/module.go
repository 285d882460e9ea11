package boconfigs

import (
	"github.com/reusee/bo/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
