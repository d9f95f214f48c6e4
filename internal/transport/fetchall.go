package transport

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"eveapi/internal/convert"
)

// Request names one fetch in a FetchAll batch.
type Request struct {
	Method Method
	Params url.Values
}

// Result pairs a Request with its outcome.
type Result struct {
	Request Request
	Doc     convert.Map
	Err     error
}

// FetchAll issues the given requests concurrently, at most limit in flight
// (limit <= 0 selects 4). Results are returned in request order, each with
// its own Doc or Err; the function's error is the first failure. The first
// failure cancels the shared context, so outstanding requests finish early
// with a cancellation error in their own Result slot.
func (c *Client) FetchAll(ctx context.Context, reqs []Request, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]Result, len(reqs))
	for i, rq := range reqs {
		g.Go(func() error {
			doc, err := c.Fetch(ctx, rq.Method, rq.Params)
			results[i] = Result{Request: rq, Doc: doc, Err: err}
			return err
		})
	}

	err := g.Wait()
	return results, err
}
