package frontends

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/reusee/bo/boconfigs"
	"github.com/reusee/bo/bolang"
	"github.com/reusee/bo/syncs"
)

const StdinName = "<stdin>"

type Outcome struct {
	Source *bolang.Source // nil if the file could not be read
	Result *Result
	Err    error
}

// LoadFiles loads files in parallel. Outcomes are in the order of paths.
// The path "-" reads standard input.
type LoadFiles func(ctx context.Context, paths []string) []Outcome

func (Module) LoadFiles(
	load Load,
	jobs boconfigs.Jobs,
) LoadFiles {
	return func(ctx context.Context, paths []string) []Outcome {
		outcomes := make([]Outcome, len(paths))
		sem := syncs.NewSemaphore(int(jobs))
		wg := new(sync.WaitGroup)
		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				outcomes[i].Err = err
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()

				src, err := readSource(path)
				if err != nil {
					outcomes[i].Err = err
					return
				}
				outcomes[i].Source = src
				outcomes[i].Result, outcomes[i].Err = load(ctx, src)
			}()
		}
		wg.Wait()
		return outcomes
	}
}

func readSource(path string) (*bolang.Source, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return bolang.NewSource(StdinName, string(content)), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return bolang.NewSource(path, string(content)), nil
}
