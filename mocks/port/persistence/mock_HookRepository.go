package persistence

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockHookRepository is a mock type for the HookRepository type
type MockHookRepository struct {
	mock.Mock
}

type MockHookRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHookRepository) EXPECT() *MockHookRepository_Expecter {
	return &MockHookRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, hook
func (_m *MockHookRepository) Create(ctx context.Context, hook *entity.GeneratedHook) error {
	ret := _m.Called(ctx, hook)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.GeneratedHook) error); ok {
		r0 = rf(ctx, hook)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockHookRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockHookRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockHookRepository_Expecter) Create(ctx interface{}, hook interface{}) *MockHookRepository_Create_Call {
	return &MockHookRepository_Create_Call{Call: _e.mock.On("Create", ctx, hook)}
}

func (_c *MockHookRepository_Create_Call) Run(run func(ctx context.Context, hook *entity.GeneratedHook)) *MockHookRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.GeneratedHook))
	})
	return _c
}

func (_c *MockHookRepository_Create_Call) Return(_a0 error) *MockHookRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHookRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.GeneratedHook) error) *MockHookRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockHookRepository) GetByID(ctx context.Context, id string) (*entity.GeneratedHook, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *entity.GeneratedHook
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.GeneratedHook, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.GeneratedHook); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.GeneratedHook)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHookRepository_GetByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByID'
type MockHookRepository_GetByID_Call struct {
	*mock.Call
}

// GetByID is a helper method to define mock.On call
func (_e *MockHookRepository_Expecter) GetByID(ctx interface{}, id interface{}) *MockHookRepository_GetByID_Call {
	return &MockHookRepository_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockHookRepository_GetByID_Call) Run(run func(ctx context.Context, id string)) *MockHookRepository_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockHookRepository_GetByID_Call) Return(_a0 *entity.GeneratedHook, _a1 error) *MockHookRepository_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookRepository_GetByID_Call) RunAndReturn(run func(context.Context, string) (*entity.GeneratedHook, error)) *MockHookRepository_GetByID_Call {
	_c.Call.Return(run)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID, limit
func (_m *MockHookRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.GeneratedHook, error) {
	ret := _m.Called(ctx, userID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
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

// MockHookRepository_ListByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByUser'
type MockHookRepository_ListByUser_Call struct {
	*mock.Call
}

// ListByUser is a helper method to define mock.On call
func (_e *MockHookRepository_Expecter) ListByUser(ctx interface{}, userID interface{}, limit interface{}) *MockHookRepository_ListByUser_Call {
	return &MockHookRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID, limit)}
}

func (_c *MockHookRepository_ListByUser_Call) Run(run func(ctx context.Context, userID string, limit int)) *MockHookRepository_ListByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockHookRepository_ListByUser_Call) Return(_a0 []*entity.GeneratedHook, _a1 error) *MockHookRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHookRepository_ListByUser_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.GeneratedHook, error)) *MockHookRepository_ListByUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHookRepository creates a new instance of MockHookRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHookRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHookRepository {
	mock := &MockHookRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
