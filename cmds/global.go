package cmds

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Fallback(fn func(arg string) error) {
	GlobalExecutor.Fallback(fn)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}
