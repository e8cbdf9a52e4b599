package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	mockcore "github.com/amirhossein-jamali/adspark/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/adspark/mocks/port/persistence"
)

type historyMocks struct {
	hooks     *mockpersistence.MockHookRepository
	searches  *mockpersistence.MockSearchRepository
	purchases *mockpersistence.MockPurchaseRepository
	logger    *mockcore.MockLogger
}

func newTestService(t *testing.T) (*Service, *historyMocks) {
	m := &historyMocks{
		hooks:     mockpersistence.NewMockHookRepository(t),
		searches:  mockpersistence.NewMockSearchRepository(t),
		purchases: mockpersistence.NewMockPurchaseRepository(t),
		logger:    mockcore.NewMockLogger(t),
	}
	svc := NewHistoryService(m.hooks, m.searches, m.purchases, m.logger).(*Service)
	return svc, m
}

func TestService_ListHooks(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		requested int
		expected  int
	}{
		{"default when unset", 0, DefaultLimit},
		{"default when negative", -5, DefaultLimit},
		{"keeps a valid limit", 10, 10},
		{"caps at the maximum", 1000, MaxLimit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t)
			hooks := []*entity.GeneratedHook{{ID: "h2"}, {ID: "h1"}}
			m.hooks.EXPECT().ListByUser(ctx, "u1", tc.expected).Return(hooks, nil).Once()

			got, err := svc.ListHooks(ctx, "u1", tc.requested)

			require.NoError(t, err)
			assert.Equal(t, hooks, got)
		})
	}

	t.Run("should require a user id", func(t *testing.T) {
		svc, m := newTestService(t)

		_, err := svc.ListHooks(ctx, "", 10)

		assert.ErrorIs(t, err, errs.ErrValidation)
		m.hooks.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should wrap store failures", func(t *testing.T) {
		svc, m := newTestService(t)
		m.hooks.EXPECT().ListByUser(ctx, "u1", DefaultLimit).Return(nil, errors.New("down")).Once()
		m.logger.EXPECT().Error("Failed to read history", mock.Anything).Once()

		_, err := svc.ListHooks(ctx, "u1", 0)

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})
}

func TestService_ListSearches(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)
	searches := []*entity.SearchRecord{{ID: "s1", Product: "Mug"}}
	m.searches.EXPECT().ListByUser(ctx, "u1", 20).Return(searches, nil).Once()

	got, err := svc.ListSearches(ctx, "u1", 20)

	require.NoError(t, err)
	assert.Equal(t, "Mug", got[0].Product)
}

func TestService_ListPurchases(t *testing.T) {
	ctx := context.Background()

	t.Run("should return purchases", func(t *testing.T) {
		svc, m := newTestService(t)
		purchases := []*entity.Purchase{{ID: "p1", Tokens: 100}}
		m.purchases.EXPECT().ListByUser(ctx, "u1", DefaultLimit).Return(purchases, nil).Once()

		got, err := svc.ListPurchases(ctx, "u1", 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("should wrap store failures", func(t *testing.T) {
		svc, m := newTestService(t)
		m.purchases.EXPECT().ListByUser(ctx, "u1", 5).Return(nil, errors.New("down")).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		_, err := svc.ListPurchases(ctx, "u1", 5)

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})
}
