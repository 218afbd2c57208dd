// Package batch builds cards for many agents at once.
package batch

import (
    "context"
    "fmt"
    "runtime"

    "github.com/youruser/bcard/internal/card"
    "go.uber.org/zap"
    "golang.org/x/sync/errgroup"
)

// Builder builds the card of one agent and returns its path.
type Builder interface {
    Build(ctx context.Context, a card.Agent) (string, error)
}

// Result is the outcome for one agent.
type Result struct {
    Agent card.Agent
    Path  string
    Err   error
}

// Options tune Run.
type Options struct {
    Workers int // <= 0 means GOMAXPROCS
    Log     *zap.Logger
}

// Run builds every agent with at most Workers builds in flight. A failed
// card does not stop the others; results keep the input order. Agents
// sharing a slug would overwrite each other's files, so only the first of
// them is built.
func Run(ctx context.Context, b Builder, agents []card.Agent, opt Options) []Result {
    log := opt.Log
    if log == nil {
        log = zap.NewNop()
    }
    workers := opt.Workers
    if workers <= 0 {
        workers = runtime.GOMAXPROCS(0)
    }

    results := make([]Result, len(agents))
    seen := map[string]int{}
    g, ctx := errgroup.WithContext(ctx)
    g.SetLimit(workers)
    for i, a := range agents {
        results[i].Agent = a
        if first, dup := seen[a.Slug()]; dup {
            results[i].Err = fmt.Errorf("duplicate agent %s (row %d)", a.Slug(), first+1)
            continue
        }
        seen[a.Slug()] = i

        i, a := i, a
        g.Go(func() error {
            path, err := b.Build(ctx, a)
            results[i].Path, results[i].Err = path, err
            if err != nil {
                log.Warn("card failed", zap.String("agent", a.String()), zap.Error(err))
                return nil
            }
            log.Info("card written", zap.String("agent", a.String()), zap.String("path", path))
            return nil
        })
    }
    g.Wait()
    return results
}

// Failed counts the results with an error.
func Failed(results []Result) int {
    n := 0
    for _, r := range results {
        if r.Err != nil {
            n++
        }
    }
    return n
}
