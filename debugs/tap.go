package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bo/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Tap starts an interactive starlark REPL over globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval runs script over globals and returns the globals it defines.
type Eval func(ctx context.Context, what string, globals map[string]any, script string) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, what string, globals map[string]any, script string) (starlark.StringDict, error) {
		logger.DebugContext(ctx, "eval: "+what)
		thread := &starlark.Thread{
			Name: what,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, msg, "tap", what)
			},
		}
		return starlark.ExecFileOptions(fileOptions, thread, what, script, toStringDict(globals))
	}
}
