package equation

import (
	"context"
	"runtime"

	"github.com/signadot/stoik/balance"

	"golang.org/x/sync/errgroup"
)

type Result struct {
	Text     string
	Equation *Equation
	Report   *balance.Report
	Err      error
}

// CheckAll parses and balances every equation in texts concurrently. The
// results are in the order of texts. An equation which fails to parse
// or balance records its error in its result; only cancellation of ctx fails the
// whole call.
func CheckAll(ctx context.Context, texts []string, opts ...Option) ([]Result, error) {
	res := make([]Result, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r := &res[i]
			r.Text = text
			r.Equation, r.Err = Parse(text, opts...)
			if r.Err == nil {
				r.Report, r.Err = r.Equation.Balance()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
