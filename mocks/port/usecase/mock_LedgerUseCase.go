package usecase

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockLedgerUseCase is a mock type for the LedgerUseCase type
type MockLedgerUseCase struct {
	mock.Mock
}

type MockLedgerUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLedgerUseCase) EXPECT() *MockLedgerUseCase_Expecter {
	return &MockLedgerUseCase_Expecter{mock: &_m.Mock}
}

// GetBalance provides a mock function with given fields: ctx, userID
func (_m *MockLedgerUseCase) GetBalance(ctx context.Context, userID string) (int64, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetBalance")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerUseCase_GetBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBalance'
type MockLedgerUseCase_GetBalance_Call struct {
	*mock.Call
}

// GetBalance is a helper method to define mock.On call
func (_e *MockLedgerUseCase_Expecter) GetBalance(ctx interface{}, userID interface{}) *MockLedgerUseCase_GetBalance_Call {
	return &MockLedgerUseCase_GetBalance_Call{Call: _e.mock.On("GetBalance", ctx, userID)}
}

func (_c *MockLedgerUseCase_GetBalance_Call) Run(run func(ctx context.Context, userID string)) *MockLedgerUseCase_GetBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLedgerUseCase_GetBalance_Call) Return(_a0 int64, _a1 error) *MockLedgerUseCase_GetBalance_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerUseCase_GetBalance_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockLedgerUseCase_GetBalance_Call {
	_c.Call.Return(run)
	return _c
}

// HasSufficientBalance provides a mock function with given fields: cached, required
func (_m *MockLedgerUseCase) HasSufficientBalance(cached int64, required int64) bool {
	ret := _m.Called(cached, required)

	if len(ret) == 0 {
		panic("no return value specified for HasSufficientBalance")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(int64, int64) bool); ok {
		r0 = rf(cached, required)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockLedgerUseCase_HasSufficientBalance_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HasSufficientBalance'
type MockLedgerUseCase_HasSufficientBalance_Call struct {
	*mock.Call
}

// HasSufficientBalance is a helper method to define mock.On call
func (_e *MockLedgerUseCase_Expecter) HasSufficientBalance(cached interface{}, required interface{}) *MockLedgerUseCase_HasSufficientBalance_Call {
	return &MockLedgerUseCase_HasSufficientBalance_Call{Call: _e.mock.On("HasSufficientBalance", cached, required)}
}

func (_c *MockLedgerUseCase_HasSufficientBalance_Call) Run(run func(cached int64, required int64)) *MockLedgerUseCase_HasSufficientBalance_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int64), args[1].(int64))
	})
	return _c
}

func (_c *MockLedgerUseCase_HasSufficientBalance_Call) Return(_a0 bool) *MockLedgerUseCase_HasSufficientBalance_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLedgerUseCase_HasSufficientBalance_Call) RunAndReturn(run func(int64, int64) bool) *MockLedgerUseCase_HasSufficientBalance_Call {
	_c.Call.Return(run)
	return _c
}

// ApplyDelta provides a mock function with given fields: ctx, userID, delta
func (_m *MockLedgerUseCase) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	ret := _m.Called(ctx, userID, delta)

	if len(ret) == 0 {
		panic("no return value specified for ApplyDelta")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) (int64, error)); ok {
		return rf(ctx, userID, delta)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) int64); ok {
		r0 = rf(ctx, userID, delta)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, userID, delta)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerUseCase_ApplyDelta_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ApplyDelta'
type MockLedgerUseCase_ApplyDelta_Call struct {
	*mock.Call
}

// ApplyDelta is a helper method to define mock.On call
func (_e *MockLedgerUseCase_Expecter) ApplyDelta(ctx interface{}, userID interface{}, delta interface{}) *MockLedgerUseCase_ApplyDelta_Call {
	return &MockLedgerUseCase_ApplyDelta_Call{Call: _e.mock.On("ApplyDelta", ctx, userID, delta)}
}

func (_c *MockLedgerUseCase_ApplyDelta_Call) Run(run func(ctx context.Context, userID string, delta int64)) *MockLedgerUseCase_ApplyDelta_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})
	return _c
}

func (_c *MockLedgerUseCase_ApplyDelta_Call) Return(_a0 int64, _a1 error) *MockLedgerUseCase_ApplyDelta_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerUseCase_ApplyDelta_Call) RunAndReturn(run func(context.Context, string, int64) (int64, error)) *MockLedgerUseCase_ApplyDelta_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLedgerUseCase creates a new instance of MockLedgerUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLedgerUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerUseCase {
	mock := &MockLedgerUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
