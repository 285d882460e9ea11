package boconfigs

import (
	"github.com/reusee/bo/cmds"
	"github.com/reusee/bo/configs"
	"github.com/reusee/bo/vars"
)

type Jobs int

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		mustFirst[int](loader, "jobs"),
		4,
	))
}
