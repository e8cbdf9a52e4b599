package gateway

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockHookGenerator is a mock type for the HookGenerator type
type MockHookGenerator struct {
	mock.Mock
}

type MockHookGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHookGenerator) EXPECT() *MockHookGenerator_Expecter {
	return &MockHookGenerator_Expecter{mock: &_m.Mock}
}

// Name provides a mock function with given fields:
func (_m *MockHookGenerator) Name() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Name")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockHookGenerator_Name_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Name'
type MockHookGenerator_Name_Call struct {
	*mock.Call
}

// Name is a helper method to define mock.On call
func (_e *MockHookGenerator_Expecter) Name() *MockHookGenerator_Name_Call {
	return &MockHookGenerator_Name_Call{Call: _e.mock.On("Name")}
}

func (_c *MockHookGenerator_Name_Call) Run(run func()) *MockHookGenerator_Name_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockHookGenerator_Name_Call) Return(_a0 string) *MockHookGenerator_Name_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHookGenerator_Name_Call) RunAndReturn(run func() string) *MockHookGenerator_Name_Call {
	_c.Call.Return(run)
	return _c
}

// Generate provides a mock function with given fields: ctx, params
func (_m *MockHookGenerator) Generate(ctx context.Context, params entity.HookParams) ([]string, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for Generate")
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

// MockHookGenerator_Generate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Generate'
type MockHookGenerator_Generate_Call struct {
	*mock.Call
}

// Generate is a helper method to define mock.On call
func (_e *MockHookGenerator_Expecter) Generate(ctx interface{}, params interface{}) *MockHookGenerator_Generate_Call {
	return &MockHookGenerator_Generate_Call{Call: _e.mock.On("Generate", ctx, params)}
}

func (_c *MockHookGenerator_Generate_Call) Run(run func(ctx context.Context, params entity.HookParams)) *MockHookGenerator_Generate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.HookParams))
	})
	return _c
}

func (_c *MockHookGenerator_Generate_Call) Return(_a0 []string, _a1 error) *MockHookGenerator_Generate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookGenerator_Generate_Call) RunAndReturn(run func(context.Context, entity.HookParams) ([]string, error)) *MockHookGenerator_Generate_Call {
	_c.Call.Return(run)
	return _c
}

// Continue provides a mock function with given fields: ctx, req
func (_m *MockHookGenerator) Continue(ctx context.Context, req entity.ContinuationRequest) (string, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Continue")
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

// MockHookGenerator_Continue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Continue'
type MockHookGenerator_Continue_Call struct {
	*mock.Call
}

// Continue is a helper method to define mock.On call
func (_e *MockHookGenerator_Expecter) Continue(ctx interface{}, req interface{}) *MockHookGenerator_Continue_Call {
	return &MockHookGenerator_Continue_Call{Call: _e.mock.On("Continue", ctx, req)}
}

func (_c *MockHookGenerator_Continue_Call) Run(run func(ctx context.Context, req entity.ContinuationRequest)) *MockHookGenerator_Continue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ContinuationRequest))
	})
	return _c
}

func (_c *MockHookGenerator_Continue_Call) Return(_a0 string, _a1 error) *MockHookGenerator_Continue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookGenerator_Continue_Call) RunAndReturn(run func(context.Context, entity.ContinuationRequest) (string, error)) *MockHookGenerator_Continue_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHookGenerator creates a new instance of MockHookGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHookGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHookGenerator {
	mock := &MockHookGenerator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
