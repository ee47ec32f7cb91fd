package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TierPlan_Go/internal/compensation"
	"github.com/osse101/TierPlan_Go/internal/domain"
	"github.com/osse101/TierPlan_Go/internal/plan"
)

// MockPlanService mocks plan.Service
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) Config() compensation.Config {
	args := m.Called()
	return args.Get(0).(compensation.Config)
}

func (m *MockPlanService) Table(ctx context.Context) domain.Table {
	args := m.Called(ctx)
	return args.Get(0).(domain.Table)
}

func (m *MockPlanService) SetMembers(ctx context.Context, level, members int) (*plan.SetResult, error) {
	args := m.Called(ctx, level, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.SetResult), args.Error(1)
}

func (m *MockPlanService) SetTable(ctx context.Context, counts []int) (*plan.SetResult, error) {
	args := m.Called(ctx, counts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*plan.SetResult), args.Error(1)
}

func (m *MockPlanService) Reset(ctx context.Context) (domain.Table, domain.Evaluation) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Table), args.Get(1).(domain.Evaluation)
}

func (m *MockPlanService) Snapshot(ctx context.Context) (domain.Table, domain.Evaluation) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Table), args.Get(1).(domain.Evaluation)
}

func (m *MockPlanService) Evaluate(ctx context.Context) domain.Evaluation {
	args := m.Called(ctx)
	return args.Get(0).(domain.Evaluation)
}

func (m *MockPlanService) Tier(ctx context.Context, level int) (domain.TierResult, error) {
	args := m.Called(ctx, level)
	return args.Get(0).(domain.TierResult), args.Error(1)
}

func (m *MockPlanService) ProjectCashFlow(ctx context.Context, days int) (*domain.CashFlow, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashFlow), args.Error(1)
}

func (m *MockPlanService) OptimalRate(ctx context.Context) domain.Recommendation {
	args := m.Called(ctx)
	return args.Get(0).(domain.Recommendation)
}

func (m *MockPlanService) CheckRequalification(ctx context.Context) []domain.Notice {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Notice)
}

func (m *MockPlanService) Warning(ctx context.Context) (domain.Notice, bool) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Notice), args.Bool(1)
}

var _ plan.Service = (*MockPlanService)(nil)
