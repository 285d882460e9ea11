package boconfigs

import (
	"github.com/reusee/bo/bolang"
	"github.com/reusee/bo/cmds"
	"github.com/reusee/bo/configs"
	"github.com/reusee/bo/vars"
)

type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth")

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		*maxDepthFlag,
		mustFirst[int](loader, "max_depth"),
		bolang.DefaultMaxDepth,
	))
}
