package boconfigs

import (
	"github.com/reusee/bo/cmds"
	"github.com/reusee/bo/configs"
	"github.com/reusee/bo/dumps"
	"github.com/reusee/bo/vars"
)

type DumpFormat dumps.Format

var dumpFlag = cmds.Var[string]("-dump")

func (Module) DumpFormat(
	loader configs.Loader,
) DumpFormat {
	format, err := dumps.ParseFormat(vars.FirstNonZero(
		*dumpFlag,
		mustFirst[string](loader, "dump"),
		string(dumps.FormatText),
	))
	if err != nil {
		panic(err)
	}
	return DumpFormat(format)
}
