// Package plan owns the live tier table. It clamps and applies member-count
// changes, recomputes the full evaluation after each one, posts warnings to the
// notice board and publishes plan events.
package plan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TierPlan_Go/internal/compensation"
	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/event"
	"github.com/osse101/TierPlan_Go/internal/logger"
	"github.com/osse101/TierPlan_Go/internal/notice"
)

// SetResult is the outcome of a member-count change.
// Clamped lists levels whose negative input was replaced by zero; Warning is
// the notice posted for them, if any.
type SetResult struct {
	Evaluation domain.Evaluation `json:"evaluation"`
	Clamped    []int             `json:"clamped,omitempty"`
	Warning    *domain.Notice    `json:"warning,omitempty"`
}

// Service defines the interface for plan operations
type Service interface {
	Config() compensation.Config
	Table(ctx context.Context) domain.Table
	SetMembers(ctx context.Context, level, members int) (*SetResult, error)
	SetTable(ctx context.Context, counts []int) (*SetResult, error)
	Reset(ctx context.Context) (domain.Table, domain.Evaluation)
	Evaluate(ctx context.Context) domain.Evaluation
	Snapshot(ctx context.Context) (domain.Table, domain.Evaluation)
	Tier(ctx context.Context, level int) (domain.TierResult, error)
	ProjectCashFlow(ctx context.Context, days int) (*domain.CashFlow, error)
	OptimalRate(ctx context.Context) domain.Recommendation
	CheckRequalification(ctx context.Context) []domain.Notice
	Warning(ctx context.Context) (domain.Notice, bool)
}

// Options tunes the projection cache and event source label
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	Source    string
}

type service struct {
	cfg   compensation.Config
	board *notice.Board
	bus   event.Bus
	cache *projectionCache
	src   string

	mu    sync.RWMutex
	table domain.Table
	eval  domain.Evaluation
}

// NewService creates a plan service with an empty table
func NewService(cfg compensation.Config, board *notice.Board, bus event.Bus, opts Options) Service {
	src := opts.Source
	if src == "" {
		src = SourceAPI
	}
	table := compensation.NewTable(cfg)
	return &service{
		cfg:   cfg,
		board: board,
		bus:   bus,
		cache: newProjectionCache(opts.CacheSize, opts.CacheTTL),
		src:   src,
		table: table,
		eval:  compensation.Evaluate(cfg, table),
	}
}

func (s *service) Config() compensation.Config {
	return s.cfg
}

func (s *service) Table(ctx context.Context) domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

func (s *service) SetMembers(ctx context.Context, level, members int) (*SetResult, error) {
	if !domain.ValidLevel(level) {
		return nil, fmt.Errorf(ErrMsgLevelFormat, domain.ErrInvalidLevel, level, domain.MinLevel, domain.MaxLevel)
	}
	if members > domain.MaxMembers {
		return nil, fmt.Errorf(ErrMsgMemberLimitFormat, domain.ErrMemberLimit, members, level, domain.MaxMembers)
	}
	return s.update(ctx, func(counts []int) {
		counts[level-1] = members
	}), nil
}

func (s *service) SetTable(ctx context.Context, counts []int) (*SetResult, error) {
	if len(counts) != domain.TierCount {
		return nil, fmt.Errorf(ErrMsgTableSizeFormat, domain.ErrInvalidTableSize, len(counts), domain.TierCount)
	}
	for i, n := range counts {
		if n > domain.MaxMembers {
			return nil, fmt.Errorf(ErrMsgMemberLimitFormat, domain.ErrMemberLimit, n, i+1, domain.MaxMembers)
		}
	}
	return s.update(ctx, func(current []int) {
		copy(current, counts)
	}), nil
}

// update applies change to a copy of the member counts, clamps the result,
// installs it and recomputes everything from scratch, all under the write lock.
func (s *service) update(ctx context.Context, change func(counts []int)) *SetResult {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	counts := s.table.Counts()
	change(counts)

	var clamped []int
	for i, n := range counts {
		var wasNegative bool
		if counts[i], wasNegative = compensation.ClampMembers(n); wasNegative {
			clamped = append(clamped, i+1)
			log.Warn(LogMsgMembersClamped, "level", i+1, "input", n)
		}
		s.table[i].CurrentMembers = counts[i]
	}
	s.eval = compensation.Evaluate(s.cfg, s.table)
	eval := s.eval
	s.mu.Unlock()

	result := &SetResult{Evaluation: eval, Clamped: clamped}
	if len(clamped) > 0 {
		// one message per change; the board only shows the latest anyway
		n := s.board.Post(domain.NoticeInvalidInput, clamped[0], fmt.Sprintf(MsgNegativeMembers, clamped[0]))
		result.Warning = &n
		s.publish(ctx, event.NewWarningEvent(n))
	}

	log.Info(LogMsgTableUpdated,
		"members", eval.Totals.Members,
		"sales", eval.Totals.Sales,
		"risk", eval.Risk.Level)
	s.publish(ctx, event.NewPlanUpdatedEvent(eval, counts, clamped, s.src))

	return result
}

// Reset returns the emptied table with its evaluation
func (s *service) Reset(ctx context.Context) (domain.Table, domain.Evaluation) {
	s.mu.Lock()
	s.table = compensation.NewTable(s.cfg)
	s.eval = compensation.Evaluate(s.cfg, s.table)
	table, eval := s.table, s.eval
	s.mu.Unlock()

	s.board.Clear()

	logger.FromContext(ctx).Info(LogMsgTableReset)
	s.publish(ctx, event.NewPlanResetEvent(eval, table.Counts(), s.src))
	return table, eval
}

func (s *service) Evaluate(ctx context.Context) domain.Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eval
}

// Snapshot reads the table and its evaluation under one lock, so the pair
// always describes the same state.
func (s *service) Snapshot(ctx context.Context) (domain.Table, domain.Evaluation) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table, s.eval
}

func (s *service) Tier(ctx context.Context, level int) (domain.TierResult, error) {
	if !domain.ValidLevel(level) {
		return domain.TierResult{}, fmt.Errorf(ErrMsgLevelFormat, domain.ErrInvalidLevel, level, domain.MinLevel, domain.MaxLevel)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eval.Tiers[level-1], nil
}

func (s *service) ProjectCashFlow(ctx context.Context, days int) (*domain.CashFlow, error) {
	if days < 0 || days > domain.MaxHorizonDays {
		return nil, fmt.Errorf(ErrMsgHorizonFormat, domain.ErrInvalidHorizon, days, domain.MaxHorizonDays)
	}

	log := logger.FromContext(ctx)
	if flow, ok := s.cache.Get(days); ok {
		log.Debug(LogMsgProjectionCacheHit, "days", days)
		return &flow, nil
	}

	flow := compensation.ProjectCashFlow(s.cfg, days)
	s.cache.Set(days, flow)
	log.Debug(LogMsgProjectionCacheMiss, "days", days, "balance", flow.Balance)
	return &flow, nil
}

func (s *service) OptimalRate(ctx context.Context) domain.Recommendation {
	return compensation.OptimalRecruitmentRate(s.cfg)
}

// CheckRequalification runs the windowed check over every tier and posts one
// notice per flagged tier in ascending order, so the board ends up showing the
// highest flagged level. Notices are raised on every call while the condition
// holds.
func (s *service) CheckRequalification(ctx context.Context) []domain.Notice {
	s.mu.RLock()
	levels := compensation.RequiringRequalification(s.cfg, s.table)
	s.mu.RUnlock()

	if len(levels) == 0 {
		return nil
	}

	notices := make([]domain.Notice, 0, len(levels))
	for _, level := range levels {
		msg := fmt.Sprintf(MsgRequalification, level, s.cfg.QualificationMultiplier)
		notices = append(notices, s.board.Post(domain.NoticeRequalification, level, msg))
	}

	logger.FromContext(ctx).Info(LogMsgRequalificationHit, "levels", levels)
	s.publish(ctx, event.NewRequalificationEvent(levels))
	s.publish(ctx, event.NewWarningEvent(notices[len(notices)-1]))
	return notices
}

func (s *service) Warning(ctx context.Context) (domain.Notice, bool) {
	return s.board.Current()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
