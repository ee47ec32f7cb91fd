package plan

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TierPlan_Go/internal/compensation"
	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/event"
	"github.com/osse101/TierPlan_Go/internal/notice"
)

// recordingBus captures published events in order
type recordingBus struct {
	*event.MemoryBus
	mu     sync.Mutex
	events []event.Event
}

func newRecordingBus() *recordingBus {
	b := &recordingBus{MemoryBus: event.NewMemoryBus()}
	record := func(ctx context.Context, evt event.Event) error {
		b.mu.Lock()
		b.events = append(b.events, evt)
		b.mu.Unlock()
		return nil
	}
	for _, t := range []event.Type{event.PlanUpdated, event.PlanReset, event.WarningRaised, event.RequalificationRequired} {
		b.Subscribe(t, record)
	}
	return b
}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, 0, len(b.events))
	for _, evt := range b.events {
		out = append(out, evt.Type)
	}
	return out
}

func setupService(t *testing.T) (*service, *notice.Board, *recordingBus) {
	t.Helper()
	board := notice.NewBoard()
	bus := newRecordingBus()
	svc := NewService(compensation.DefaultConfig(), board, bus, Options{CacheSize: 4, CacheTTL: time.Minute})
	return svc.(*service), board, bus
}

func TestNewService_EmptyTable(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	eval := svc.Evaluate(ctx)
	table := svc.Table(ctx)

	assert.Zero(t, eval.Totals.Members)
	assert.Equal(t, domain.RiskLow, eval.Risk.Level)
	assert.Equal(t, 20, eval.Recommendation.Daily)
	for i, tier := range table {
		assert.Equal(t, i+1, tier.Level)
		assert.Zero(t, tier.CurrentMembers)
	}
}

func TestSetTable(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes the evaluation", func(t *testing.T) {
		svc, board, bus := setupService(t)

		res, err := svc.SetTable(ctx, []int{0, 10, 0, 0, 0, 0, 0, 0})

		require.NoError(t, err)
		assert.InDelta(t, 4000, res.Evaluation.Totals.Sales, 1e-9)
		assert.InDelta(t, 2520, res.Evaluation.Totals.Bonuses, 1e-9)
		assert.Equal(t, domain.RiskMedium, res.Evaluation.Risk.Level)
		assert.Equal(t, 14, res.Evaluation.Recommendation.Daily)
		assert.Empty(t, res.Clamped)
		assert.Nil(t, res.Warning)
		assert.Equal(t, res.Evaluation, svc.Evaluate(ctx))
		assert.Equal(t, []event.Type{event.PlanUpdated}, bus.types())

		_, ok := board.Current()
		assert.False(t, ok)
	})

	t.Run("rejects the wrong number of counts", func(t *testing.T) {
		svc, _, bus := setupService(t)

		res, err := svc.SetTable(ctx, []int{1, 2, 3})

		assert.ErrorIs(t, err, domain.ErrInvalidTableSize)
		assert.Nil(t, res)
		assert.Empty(t, bus.types())
	})

	t.Run("clamps negatives and still recomputes", func(t *testing.T) {
		svc, board, bus := setupService(t)

		res, err := svc.SetTable(ctx, []int{5, 0, -2, 0, 0, 0, -1, 0})

		require.NoError(t, err)
		assert.Equal(t, []int{3, 7}, res.Clamped)
		require.NotNil(t, res.Warning)
		assert.Equal(t, "member count cannot be negative (tier 3)", res.Warning.Message)
		assert.Equal(t, []int{5, 0, 0, 0, 0, 0, 0, 0}, svc.Table(ctx).Counts())
		assert.InDelta(t, 1000, res.Evaluation.Totals.Sales, 1e-9)

		current, ok := board.Current()
		require.True(t, ok)
		assert.Equal(t, domain.NoticeInvalidInput, current.Kind)
		assert.Equal(t, []event.Type{event.WarningRaised, event.PlanUpdated}, bus.types())
	})

	t.Run("rejects counts above the member limit", func(t *testing.T) {
		svc, _, bus := setupService(t)
		_, err := svc.SetTable(ctx, []int{1, 1, 1, 1, 1, 1, 1, 1})
		require.NoError(t, err)

		res, err := svc.SetTable(ctx, []int{math.MaxInt64, 1, 0, 0, 0, 0, 0, 0})

		assert.ErrorIs(t, err, domain.ErrMemberLimit)
		assert.Nil(t, res)
		assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1}, svc.Table(ctx).Counts())
		assert.Equal(t, []event.Type{event.PlanUpdated}, bus.types())
	})

	t.Run("accepts counts at the member limit", func(t *testing.T) {
		svc, _, _ := setupService(t)
		counts := []int{domain.MaxMembers, domain.MaxMembers, domain.MaxMembers, domain.MaxMembers,
			domain.MaxMembers, domain.MaxMembers, domain.MaxMembers, domain.MaxMembers}

		res, err := svc.SetTable(ctx, counts)

		require.NoError(t, err)
		assert.Equal(t, domain.TierCount*domain.MaxMembers, res.Evaluation.Totals.Members)
		assert.Positive(t, res.Evaluation.Totals.Sales)
	})

	t.Run("does not keep a reference to the caller slice", func(t *testing.T) {
		svc, _, _ := setupService(t)
		counts := []int{1, 1, 1, 1, 1, 1, 1, 1}

		_, err := svc.SetTable(ctx, counts)
		require.NoError(t, err)
		counts[0] = 99

		assert.Equal(t, 1, svc.Table(ctx)[0].CurrentMembers)
	})
}

func TestSetMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("changes a single tier", func(t *testing.T) {
		svc, _, _ := setupService(t)
		_, err := svc.SetTable(ctx, []int{1, 2, 3, 4, 5, 6, 7, 8})
		require.NoError(t, err)

		res, err := svc.SetMembers(ctx, 4, 40)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 40, 5, 6, 7, 8}, svc.Table(ctx).Counts())
		assert.Equal(t, 40, res.Evaluation.Tiers[3].Members)
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		svc, _, _ := setupService(t)

		for _, level := range []int{0, 9, -1} {
			_, err := svc.SetMembers(ctx, level, 1)
			assert.ErrorIs(t, err, domain.ErrInvalidLevel)
		}
	})

	t.Run("rejects a count above the member limit", func(t *testing.T) {
		svc, _, _ := setupService(t)

		res, err := svc.SetMembers(ctx, 3, domain.MaxMembers+1)

		assert.ErrorIs(t, err, domain.ErrMemberLimit)
		assert.Contains(t, err.Error(), "at tier 3")
		assert.Nil(t, res)
		assert.Zero(t, svc.Table(ctx)[2].CurrentMembers)
	})

	t.Run("negative input clamps and warns", func(t *testing.T) {
		svc, board, _ := setupService(t)
		_, err := svc.SetMembers(ctx, 2, 10)
		require.NoError(t, err)

		res, err := svc.SetMembers(ctx, 2, -4)

		require.NoError(t, err)
		assert.Equal(t, []int{2}, res.Clamped)
		assert.Zero(t, svc.Table(ctx)[1].CurrentMembers)

		warning, ok := svc.Warning(ctx)
		require.True(t, ok)
		current, _ := board.Current()
		assert.Equal(t, current, warning)
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc, board, bus := setupService(t)
	_, err := svc.SetTable(ctx, []int{5, -1, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	table, eval := svc.Reset(ctx)

	assert.Zero(t, eval.Totals.Members)
	assert.Equal(t, make([]int, domain.TierCount), table.Counts())
	assert.Equal(t, make([]int, domain.TierCount), svc.Table(ctx).Counts())
	_, ok := board.Current()
	assert.False(t, ok)
	assert.Equal(t, event.PlanReset, bus.types()[len(bus.types())-1])
}

func TestTier(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)
	_, err := svc.SetMembers(ctx, 1, 5)
	require.NoError(t, err)

	res, err := svc.Tier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 60, res.RequalificationDays)

	_, err = svc.Tier(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestProjectCashFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("computes and caches", func(t *testing.T) {
		svc, _, _ := setupService(t)

		first, err := svc.ProjectCashFlow(ctx, 30)
		require.NoError(t, err)
		second, err := svc.ProjectCashFlow(ctx, 30)
		require.NoError(t, err)

		assert.InDelta(t, 3288000, first.Inflow, 1e-6)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, svc.cache.Len())
	})

	t.Run("cached entries are isolated from callers", func(t *testing.T) {
		svc, _, _ := setupService(t)

		first, err := svc.ProjectCashFlow(ctx, 10)
		require.NoError(t, err)
		first.Tiers[0].Inflow = -1

		second, err := svc.ProjectCashFlow(ctx, 10)
		require.NoError(t, err)
		assert.Positive(t, second.Tiers[0].Inflow)
	})

	t.Run("zero horizon", func(t *testing.T) {
		svc, _, _ := setupService(t)

		flow, err := svc.ProjectCashFlow(ctx, 0)

		require.NoError(t, err)
		assert.Zero(t, flow.Balance)
	})

	t.Run("negative horizon", func(t *testing.T) {
		svc, _, _ := setupService(t)

		flow, err := svc.ProjectCashFlow(ctx, -1)

		assert.ErrorIs(t, err, domain.ErrInvalidHorizon)
		assert.Nil(t, flow)
	})

	t.Run("horizon beyond the limit", func(t *testing.T) {
		svc, _, _ := setupService(t)

		for _, days := range []int{domain.MaxHorizonDays + 1, 461168601842738790} {
			flow, err := svc.ProjectCashFlow(ctx, days)
			assert.ErrorIs(t, err, domain.ErrInvalidHorizon)
			assert.Nil(t, flow)
		}
		assert.Zero(t, svc.cache.Len())
	})

	t.Run("horizon at the limit", func(t *testing.T) {
		svc, _, _ := setupService(t)

		flow, err := svc.ProjectCashFlow(ctx, domain.MaxHorizonDays)

		require.NoError(t, err)
		assert.Equal(t, domain.MaxHorizonDays, flow.Days)
		assert.Positive(t, flow.Inflow)
	})
}

func TestOptimalRate(t *testing.T) {
	svc, _, _ := setupService(t)

	rec := svc.OptimalRate(context.Background())

	assert.Equal(t, domain.Recommendation{Daily: 12, Weekly: 60}, rec)
}

func TestCheckRequalification(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing to report", func(t *testing.T) {
		svc, board, bus := setupService(t)
		_, err := svc.SetTable(ctx, []int{59, 4, 0, 0, 0, 0, 0, 0})
		require.NoError(t, err)

		assert.Empty(t, svc.CheckRequalification(ctx))
		_, ok := board.Current()
		assert.False(t, ok)
		assert.Equal(t, []event.Type{event.PlanUpdated}, bus.types())
	})

	t.Run("posts a notice per flagged tier and re-fires every poll", func(t *testing.T) {
		svc, board, bus := setupService(t)
		_, err := svc.SetTable(ctx, []int{60, 4, 5, 0, 0, 0, 0, 0})
		require.NoError(t, err)

		first := svc.CheckRequalification(ctx)
		second := svc.CheckRequalification(ctx)

		require.Len(t, first, 2)
		require.Len(t, second, 2)
		assert.Equal(t, 1, first[0].Level)
		assert.Equal(t, 3, first[1].Level)
		assert.Equal(t, "tier 3 members must requalify: earnings reached 3x the join fee", first[1].Message)

		current, ok := board.Current()
		require.True(t, ok)
		assert.Equal(t, 3, current.Level)
		assert.Equal(t, domain.NoticeRequalification, current.Kind)

		assert.Equal(t, []event.Type{
			event.PlanUpdated,
			event.RequalificationRequired, event.WarningRaised,
			event.RequalificationRequired, event.WarningRaised,
		}, bus.types())
	})
}

func TestService_NilBus(t *testing.T) {
	svc := NewService(compensation.DefaultConfig(), notice.NewBoard(), nil, Options{})

	_, err := svc.SetTable(context.Background(), []int{0, 0, 0, 0, 0, 0, 0, -1})

	assert.NoError(t, err)
}

func TestService_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = svc.SetMembers(ctx, n%domain.TierCount+1, n)
		}(i)
		go func() {
			defer wg.Done()
			_ = svc.Evaluate(ctx)
			_ = svc.CheckRequalification(ctx)
		}()
	}
	wg.Wait()

	// every tier ends with a value written by one of the writers
	for _, tier := range svc.Table(ctx) {
		assert.GreaterOrEqual(t, tier.CurrentMembers, 0)
	}
	assert.Equal(t, compensation.Evaluate(svc.cfg, svc.Table(ctx)), svc.Evaluate(ctx))
}

func TestSnapshot_MatchesEvaluation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := setupService(t)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for n := 0; ; n++ {
			select {
			case <-done:
				return
			default:
			}
			if n%2 == 0 {
				_, _ = svc.SetTable(ctx, []int{n, n, n, n, n, n, n, n})
			} else {
				svc.Reset(ctx)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		table, eval := svc.Snapshot(ctx)
		require.Equal(t, compensation.Evaluate(svc.cfg, table), eval)
	}
	close(done)
	wg.Wait()
}
