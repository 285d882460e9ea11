package frontends

import (
	"context"
	"fmt"

	"github.com/reusee/bo/boconfigs"
	"github.com/reusee/bo/bolang"
	"github.com/reusee/bo/logs"
	"github.com/reusee/bo/modes"
)

type Result struct {
	Source *bolang.Source
	Tokens []bolang.Token
	Module *bolang.Module
}

// Load scans and parses one source unit.
type Load func(ctx context.Context, src *bolang.Source) (*Result, error)

func (Module) Load(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxDepth boconfigs.MaxDepth,
	mode modes.Mode,
) Load {
	options := bolang.Options{
		MaxDepth: int(maxDepth),
	}

	return func(ctx context.Context, src *bolang.Source) (_ *Result, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			if err != nil {
				logFailure(ctx, logger, src, err)
				err = logs.WrapSpan(ctx, err)
			}
		}()

		tokens, err := src.Scan()
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "scanned",
			"source", src.Name,
			"tokens", len(tokens),
		)
		if mode == modes.ModeDevelopment {
			if err := checkPositions(src, tokens); err != nil {
				panic(err)
			}
		}

		module, err := options.Parse(tokens)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "parsed",
			"source", src.Name,
			"statements", len(module.Stmts),
		)

		return &Result{
			Source: src,
			Tokens: tokens,
			Module: module,
		}, nil
	}
}

func logFailure(ctx context.Context, logger logs.Logger, src *bolang.Source, err error) {
	rendered, ok := src.Render(err, bolang.RenderOptions{})
	if !ok {
		logger.InfoContext(ctx, "load failed",
			"source", src.Name,
			"error", err,
		)
		return
	}
	logger.InfoContext(ctx, "load failed",
		"source", src.Name,
		"message", rendered.Message,
		"line", rendered.LineNumber,
	)
}

// checkPositions verifies that tokens are in textual order and start inside the source.
func checkPositions(src *bolang.Source, tokens []bolang.Token) error {
	last := -1
	for _, tok := range tokens {
		if tok.Pos <= last {
			return fmt.Errorf("%s: token %v at %d out of order", src.Name, tok, tok.Pos)
		}
		if src.Slice(tok.Pos) == "" {
			return fmt.Errorf("%s: token %v at %d out of range", src.Name, tok, tok.Pos)
		}
		last = tok.Pos
	}
	return nil
}
