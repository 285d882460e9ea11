package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bo/boconfigs"
	"github.com/reusee/bo/cmds"
	"github.com/reusee/bo/configs"
	"github.com/reusee/bo/debugs"
	"github.com/reusee/bo/dumps"
	"github.com/reusee/bo/frontends"
	"github.com/reusee/bo/logs"
	"github.com/reusee/bo/modes"
	"github.com/reusee/bo/reports"
	"github.com/reusee/dscope"
)

var (
	tokensFlag = cmds.Switch("-tokens")
	tapFlag    = cmds.Switch("-tap")
	scriptFlag = cmds.Var[string]("-tap-script")
	files      []string
)

func init() {
	cmds.Fallback(func(arg string) error {
		files = append(files, arg)
		return nil
	})
}

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	var script string
	if *scriptFlag != "" {
		content, err := os.ReadFile(*scriptFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		script = string(content)
	}

	scope := dscope.New(
		new(frontends.Module),
		new(reports.Module),
		new(debugs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		loader configs.Loader,
	) {
		if _, err := loader.Paths(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	})

	failed := false
	scope.Call(func(
		loadFiles frontends.LoadFiles,
		report reports.Report,
		format boconfigs.DumpFormat,
		tap debugs.Tap,
		eval debugs.Eval,
		logger logs.Logger,
	) {
		ctx := context.Background()
		for i, outcome := range loadFiles(ctx, files) {
			if outcome.Source == nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", files[i], outcome.Err)
				failed = true
				continue
			}

			if outcome.Err != nil {
				report(outcome.Source, outcome.Err)
				failed = true
			} else {
				var v any = outcome.Result.Module
				if *tokensFlag {
					v = outcome.Result.Tokens
				}
				if err := dumps.Encode(os.Stdout, dumps.Format(format), v); err != nil {
					logger.Error("dump failed", "name", outcome.Source.Name, "error", err)
					failed = true
				}
			}

			if script == "" && !*tapFlag {
				continue
			}
			var globals map[string]any
			if outcome.Result != nil {
				globals = debugs.Globals(outcome.Source, outcome.Result.Tokens, outcome.Result.Module)
			} else {
				globals = debugs.Globals(outcome.Source, nil, nil)
			}
			globals["error"] = fmt.Sprint(outcome.Err)
			if script != "" {
				if _, err := eval(ctx, *scriptFlag, globals, script); err != nil {
					logger.Error("tap script failed", "name", outcome.Source.Name, "error", err)
					failed = true
				}
			}
			if *tapFlag {
				tap(ctx, outcome.Source.Name, globals)
			}
		}
	})

	if failed {
		os.Exit(1)
	}
}
