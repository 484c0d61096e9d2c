package compat

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"overcast/internal/types"
)

// CallSite is one pending resolution against its own candidate set, laid
// out the same way SelectOverload expects.
type CallSite struct {
	Sig        []types.TypeID
	Candidates []types.TypeID
	Count      int
}

// Outcome is the resolution result for one call site.
type Outcome struct {
	Matches  int
	Selected int
}

// SelectAll resolves many call sites concurrently. The manager must not be
// mutated while SelectAll runs: resolution only reads the table, so
// concurrent lookups are safe once registration is done.
func (m *Manager) SelectAll(ctx context.Context, sites []CallSite, allowUnsafe bool) ([]Outcome, error) {
	outcomes := make([]Outcome, len(sites))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range sites {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			site := sites[i]
			matches, selected := m.SelectOverload(site.Sig, site.Candidates, site.Count, allowUnsafe)
			outcomes[i] = Outcome{Matches: matches, Selected: selected}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
