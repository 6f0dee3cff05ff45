package graph

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConcurrentCollectsUpdatesInDeclaredOrder(t *testing.T) {
	var mu sync.Mutex
	started := make(map[WorkerName]bool)

	barrier := make(chan struct{})
	worker := func(name WorkerName, field func(*Update)) Handler {
		return NewHandler(name, func(ctx context.Context, snapshot State) (Update, error) {
			mu.Lock()
			started[name] = true
			if len(started) == 2 {
				close(barrier)
			}
			mu.Unlock()

			// Both workers must be in flight before either returns.
			select {
			case <-barrier:
			case <-ctx.Done():
				return Update{}, ctx.Err()
			}

			var u Update
			field(&u)
			return u, nil
		})
	}

	updates, err := RunConcurrent(context.Background(), State{CurrentTask: "t"},
		worker("data", func(u *Update) { u.ResearchData = "facts" }),
		worker("market", func(u *Update) { u.MarketData = "trends" }),
	)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	assert.Equal(t, "facts", updates[0].ResearchData)
	assert.Equal(t, "trends", updates[1].MarketData)
}

func TestRunConcurrentFailureYieldsNoPartialUpdates(t *testing.T) {
	boom := errors.New("branch failed")

	updates, err := RunConcurrent(context.Background(), State{},
		NewHandler("ok", func(ctx context.Context, snapshot State) (Update, error) {
			return Update{ResearchData: "facts"}, nil
		}),
		NewHandler("bad", func(ctx context.Context, snapshot State) (Update, error) {
			return Update{}, boom
		}),
	)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, updates)
}

func TestRunConcurrentHandsEachBranchItsOwnSnapshot(t *testing.T) {
	snapshot := State{CurrentTask: "topic"}

	_, err := RunConcurrent(context.Background(), snapshot,
		NewHandler("a", func(ctx context.Context, s State) (Update, error) {
			s.CurrentTask = "mutated"
			return Update{}, nil
		}),
		NewHandler("b", func(ctx context.Context, s State) (Update, error) {
			assert.Equal(t, "topic", s.CurrentTask)
			return Update{}, nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "topic", snapshot.CurrentTask)
}
