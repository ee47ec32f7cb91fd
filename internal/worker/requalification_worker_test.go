package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/TierPlan_Go/internal/domain"
)

// MockChecker mocks the RequalificationChecker interface
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) CheckRequalification(ctx context.Context) []domain.Notice {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Notice)
}

func TestRequalificationWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("polls when attended", func(t *testing.T) {
		checker := &MockChecker{}
		checker.On("CheckRequalification", mock.Anything).Return([]domain.Notice{{Level: 1}}).Twice()

		w := NewRequalificationWorker(checker, GateFunc(func() bool { return true }))

		assert.NoError(t, w.Process(ctx))
		assert.NoError(t, w.Process(ctx))
		checker.AssertExpectations(t)
	})

	t.Run("skips when nobody is watching", func(t *testing.T) {
		checker := &MockChecker{}

		w := NewRequalificationWorker(checker, GateFunc(func() bool { return false }))

		assert.NoError(t, w.Process(ctx))
		checker.AssertNotCalled(t, "CheckRequalification", mock.Anything)
	})

	t.Run("nil gate always polls", func(t *testing.T) {
		checker := &MockChecker{}
		checker.On("CheckRequalification", mock.Anything).Return(nil).Once()

		w := NewRequalificationWorker(checker, nil)

		assert.NoError(t, w.Process(ctx))
		checker.AssertExpectations(t)
	})
}
