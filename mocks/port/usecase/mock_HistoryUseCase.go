package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockHistoryUseCase is a mock type for the HistoryUseCase type
type MockHistoryUseCase struct {
	mock.Mock
}

type MockHistoryUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHistoryUseCase) EXPECT() *MockHistoryUseCase_Expecter {
	return &MockHistoryUseCase_Expecter{mock: &_m.Mock}
}

// ListHooks provides a mock function with given fields: ctx, userID, limit
func (_m *MockHistoryUseCase) ListHooks(ctx context.Context, userID string, limit int) ([]*entity.GeneratedHook, error) {
	ret := _m.Called(ctx, userID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListHooks")
	}

	var r0 []*entity.GeneratedHook
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]*entity.GeneratedHook, error)); ok {
		return rf(ctx, userID, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []*entity.GeneratedHook); ok {
		r0 = rf(ctx, userID, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.GeneratedHook)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, userID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHistoryUseCase_ListHooks_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListHooks'
type MockHistoryUseCase_ListHooks_Call struct {
	*mock.Call
}

// ListHooks is a helper method to define mock.On call
func (_e *MockHistoryUseCase_Expecter) ListHooks(ctx interface{}, userID interface{}, limit interface{}) *MockHistoryUseCase_ListHooks_Call {
	return &MockHistoryUseCase_ListHooks_Call{Call: _e.mock.On("ListHooks", ctx, userID, limit)}
}

func (_c *MockHistoryUseCase_ListHooks_Call) Run(run func(ctx context.Context, userID string, limit int)) *MockHistoryUseCase_ListHooks_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockHistoryUseCase_ListHooks_Call) Return(_a0 []*entity.GeneratedHook, _a1 error) *MockHistoryUseCase_ListHooks_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHistoryUseCase_ListHooks_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.GeneratedHook, error)) *MockHistoryUseCase_ListHooks_Call {
	_c.Call.Return(run)
	return _c
}

// ListSearches provides a mock function with given fields: ctx, userID, limit
func (_m *MockHistoryUseCase) ListSearches(ctx context.Context, userID string, limit int) ([]*entity.SearchRecord, error) {
	ret := _m.Called(ctx, userID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListSearches")
	}

	var r0 []*entity.SearchRecord
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]*entity.SearchRecord, error)); ok {
		return rf(ctx, userID, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []*entity.SearchRecord); ok {
		r0 = rf(ctx, userID, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.SearchRecord)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, userID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHistoryUseCase_ListSearches_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListSearches'
type MockHistoryUseCase_ListSearches_Call struct {
	*mock.Call
}

// ListSearches is a helper method to define mock.On call
func (_e *MockHistoryUseCase_Expecter) ListSearches(ctx interface{}, userID interface{}, limit interface{}) *MockHistoryUseCase_ListSearches_Call {
	return &MockHistoryUseCase_ListSearches_Call{Call: _e.mock.On("ListSearches", ctx, userID, limit)}
}

func (_c *MockHistoryUseCase_ListSearches_Call) Run(run func(ctx context.Context, userID string, limit int)) *MockHistoryUseCase_ListSearches_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockHistoryUseCase_ListSearches_Call) Return(_a0 []*entity.SearchRecord, _a1 error) *MockHistoryUseCase_ListSearches_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHistoryUseCase_ListSearches_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.SearchRecord, error)) *MockHistoryUseCase_ListSearches_Call {
	_c.Call.Return(run)
	return _c
}

// ListPurchases provides a mock function with given fields: ctx, userID, limit
func (_m *MockHistoryUseCase) ListPurchases(ctx context.Context, userID string, limit int) ([]*entity.Purchase, error) {
	ret := _m.Called(ctx, userID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListPurchases")
	}

	var r0 []*entity.Purchase
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]*entity.Purchase, error)); ok {
		return rf(ctx, userID, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []*entity.Purchase); ok {
		r0 = rf(ctx, userID, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Purchase)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, userID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHistoryUseCase_ListPurchases_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListPurchases'
type MockHistoryUseCase_ListPurchases_Call struct {
	*mock.Call
}

// ListPurchases is a helper method to define mock.On call
func (_e *MockHistoryUseCase_Expecter) ListPurchases(ctx interface{}, userID interface{}, limit interface{}) *MockHistoryUseCase_ListPurchases_Call {
	return &MockHistoryUseCase_ListPurchases_Call{Call: _e.mock.On("ListPurchases", ctx, userID, limit)}
}

func (_c *MockHistoryUseCase_ListPurchases_Call) Run(run func(ctx context.Context, userID string, limit int)) *MockHistoryUseCase_ListPurchases_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockHistoryUseCase_ListPurchases_Call) Return(_a0 []*entity.Purchase, _a1 error) *MockHistoryUseCase_ListPurchases_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHistoryUseCase_ListPurchases_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.Purchase, error)) *MockHistoryUseCase_ListPurchases_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHistoryUseCase creates a new instance of MockHistoryUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHistoryUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHistoryUseCase {
	mock := &MockHistoryUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
