package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockHookUseCase is a mock type for the HookUseCase type
type MockHookUseCase struct {
	mock.Mock
}

type MockHookUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHookUseCase) EXPECT() *MockHookUseCase_Expecter {
	return &MockHookUseCase_Expecter{mock: &_m.Mock}
}

// GenerateHooks provides a mock function with given fields: ctx, userID, params
func (_m *MockHookUseCase) GenerateHooks(ctx context.Context, userID string, params entity.HookParams) (*entity.GenerationResult, error) {
	ret := _m.Called(ctx, userID, params)

	if len(ret) == 0 {
		panic("no return value specified for GenerateHooks")
	}

	var r0 *entity.GenerationResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.HookParams) (*entity.GenerationResult, error)); ok {
		return rf(ctx, userID, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.HookParams) *entity.GenerationResult); ok {
		r0 = rf(ctx, userID, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.GenerationResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, entity.HookParams) error); ok {
		r1 = rf(ctx, userID, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHookUseCase_GenerateHooks_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateHooks'
type MockHookUseCase_GenerateHooks_Call struct {
	*mock.Call
}

// GenerateHooks is a helper method to define mock.On call
func (_e *MockHookUseCase_Expecter) GenerateHooks(ctx interface{}, userID interface{}, params interface{}) *MockHookUseCase_GenerateHooks_Call {
	return &MockHookUseCase_GenerateHooks_Call{Call: _e.mock.On("GenerateHooks", ctx, userID, params)}
}

func (_c *MockHookUseCase_GenerateHooks_Call) Run(run func(ctx context.Context, userID string, params entity.HookParams)) *MockHookUseCase_GenerateHooks_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.HookParams))
	})
	return _c
}

func (_c *MockHookUseCase_GenerateHooks_Call) Return(_a0 *entity.GenerationResult, _a1 error) *MockHookUseCase_GenerateHooks_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookUseCase_GenerateHooks_Call) RunAndReturn(run func(context.Context, string, entity.HookParams) (*entity.GenerationResult, error)) *MockHookUseCase_GenerateHooks_Call {
	_c.Call.Return(run)
	return _c
}

// ContinueHook provides a mock function with given fields: ctx, userID, req
func (_m *MockHookUseCase) ContinueHook(ctx context.Context, userID string, req entity.ContinuationRequest) (*entity.GenerationResult, error) {
	ret := _m.Called(ctx, userID, req)

	if len(ret) == 0 {
		panic("no return value specified for ContinueHook")
	}

	var r0 *entity.GenerationResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.ContinuationRequest) (*entity.GenerationResult, error)); ok {
		return rf(ctx, userID, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.ContinuationRequest) *entity.GenerationResult); ok {
		r0 = rf(ctx, userID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.GenerationResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, entity.ContinuationRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHookUseCase_ContinueHook_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ContinueHook'
type MockHookUseCase_ContinueHook_Call struct {
	*mock.Call
}

// ContinueHook is a helper method to define mock.On call
func (_e *MockHookUseCase_Expecter) ContinueHook(ctx interface{}, userID interface{}, req interface{}) *MockHookUseCase_ContinueHook_Call {
	return &MockHookUseCase_ContinueHook_Call{Call: _e.mock.On("ContinueHook", ctx, userID, req)}
}

func (_c *MockHookUseCase_ContinueHook_Call) Run(run func(ctx context.Context, userID string, req entity.ContinuationRequest)) *MockHookUseCase_ContinueHook_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.ContinuationRequest))
	})
	return _c
}

func (_c *MockHookUseCase_ContinueHook_Call) Return(_a0 *entity.GenerationResult, _a1 error) *MockHookUseCase_ContinueHook_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookUseCase_ContinueHook_Call) RunAndReturn(run func(context.Context, string, entity.ContinuationRequest) (*entity.GenerationResult, error)) *MockHookUseCase_ContinueHook_Call {
	_c.Call.Return(run)
	return _c
}

// PreviewHooks provides a mock function with given fields: ctx, params
func (_m *MockHookUseCase) PreviewHooks(ctx context.Context, params entity.HookParams) ([]string, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for PreviewHooks")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.HookParams) ([]string, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.HookParams) []string); ok {
		r0 = rf(ctx, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.HookParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHookUseCase_PreviewHooks_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PreviewHooks'
type MockHookUseCase_PreviewHooks_Call struct {
	*mock.Call
}

// PreviewHooks is a helper method to define mock.On call
func (_e *MockHookUseCase_Expecter) PreviewHooks(ctx interface{}, params interface{}) *MockHookUseCase_PreviewHooks_Call {
	return &MockHookUseCase_PreviewHooks_Call{Call: _e.mock.On("PreviewHooks", ctx, params)}
}

func (_c *MockHookUseCase_PreviewHooks_Call) Run(run func(ctx context.Context, params entity.HookParams)) *MockHookUseCase_PreviewHooks_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.HookParams))
	})
	return _c
}

func (_c *MockHookUseCase_PreviewHooks_Call) Return(_a0 []string, _a1 error) *MockHookUseCase_PreviewHooks_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookUseCase_PreviewHooks_Call) RunAndReturn(run func(context.Context, entity.HookParams) ([]string, error)) *MockHookUseCase_PreviewHooks_Call {
	_c.Call.Return(run)
	return _c
}

// PreviewContinuation provides a mock function with given fields: ctx, req
func (_m *MockHookUseCase) PreviewContinuation(ctx context.Context, req entity.ContinuationRequest) (string, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for PreviewContinuation")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.ContinuationRequest) (string, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.ContinuationRequest) string); ok {
		r0 = rf(ctx, req)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.ContinuationRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHookUseCase_PreviewContinuation_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PreviewContinuation'
type MockHookUseCase_PreviewContinuation_Call struct {
	*mock.Call
}

// PreviewContinuation is a helper method to define mock.On call
func (_e *MockHookUseCase_Expecter) PreviewContinuation(ctx interface{}, req interface{}) *MockHookUseCase_PreviewContinuation_Call {
	return &MockHookUseCase_PreviewContinuation_Call{Call: _e.mock.On("PreviewContinuation", ctx, req)}
}

func (_c *MockHookUseCase_PreviewContinuation_Call) Run(run func(ctx context.Context, req entity.ContinuationRequest)) *MockHookUseCase_PreviewContinuation_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ContinuationRequest))
	})
	return _c
}

func (_c *MockHookUseCase_PreviewContinuation_Call) Return(_a0 string, _a1 error) *MockHookUseCase_PreviewContinuation_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookUseCase_PreviewContinuation_Call) RunAndReturn(run func(context.Context, entity.ContinuationRequest) (string, error)) *MockHookUseCase_PreviewContinuation_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHookUseCase creates a new instance of MockHookUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHookUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHookUseCase {
	mock := &MockHookUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
