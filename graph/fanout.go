package graph

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunConcurrent executes handlers against clones of the same snapshot in
// parallel and collects their updates in declared order. The first failure
// cancels the derived context so remaining in-flight handlers return
// early, and no updates are delivered: the join yields every branch's
// update or an error, never a partial set.
func RunConcurrent(ctx context.Context, snapshot State, handlers ...Handler) ([]Update, error) {
	updates := make([]Update, len(handlers))
	g, gctx := errgroup.WithContext(ctx)

	for i, h := range handlers {
		g.Go(func() error {
			update, err := h.Run(gctx, snapshot.Clone())
			if err != nil {
				return err
			}
			updates[i] = update
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return updates, nil
}
