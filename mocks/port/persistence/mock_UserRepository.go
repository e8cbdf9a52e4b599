package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"

	mock "github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the UserRepository type
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Create(ctx context.Context, user *entity.UserAccount) error {
	ret := _m.Called(ctx, user)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.UserAccount) error); ok {
		r0 = rf(ctx, user)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUserRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockUserRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) Create(ctx interface{}, user interface{}) *MockUserRepository_Create_Call {
	return &MockUserRepository_Create_Call{Call: _e.mock.On("Create", ctx, user)}
}

func (_c *MockUserRepository_Create_Call) Run(run func(ctx context.Context, user *entity.UserAccount)) *MockUserRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.UserAccount))
	})
	return _c
}

func (_c *MockUserRepository_Create_Call) Return(_a0 error) *MockUserRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUserRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.UserAccount) error) *MockUserRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.UserAccount, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *entity.UserAccount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.UserAccount, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.UserAccount); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.UserAccount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserRepository_GetByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetByID'
type MockUserRepository_GetByID_Call struct {
	*mock.Call
}

// GetByID is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) GetByID(ctx interface{}, id interface{}) *MockUserRepository_GetByID_Call {
	return &MockUserRepository_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockUserRepository_GetByID_Call) Run(run func(ctx context.Context, id string)) *MockUserRepository_GetByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockUserRepository_GetByID_Call) Return(_a0 *entity.UserAccount, _a1 error) *MockUserRepository_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserRepository_GetByID_Call) RunAndReturn(run func(context.Context, string) (*entity.UserAccount, error)) *MockUserRepository_GetByID_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Update(ctx context.Context, user *entity.UserAccount) error {
	ret := _m.Called(ctx, user)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.UserAccount) error); ok {
		r0 = rf(ctx, user)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUserRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockUserRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) Update(ctx interface{}, user interface{}) *MockUserRepository_Update_Call {
	return &MockUserRepository_Update_Call{Call: _e.mock.On("Update", ctx, user)}
}

func (_c *MockUserRepository_Update_Call) Run(run func(ctx context.Context, user *entity.UserAccount)) *MockUserRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.UserAccount))
	})
	return _c
}

func (_c *MockUserRepository_Update_Call) Return(_a0 error) *MockUserRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUserRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.UserAccount) error) *MockUserRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// GetTokens provides a mock function with given fields: ctx, id
func (_m *MockUserRepository) GetTokens(ctx context.Context, id string) (int64, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetTokens")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserRepository_GetTokens_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTokens'
type MockUserRepository_GetTokens_Call struct {
	*mock.Call
}

// GetTokens is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) GetTokens(ctx interface{}, id interface{}) *MockUserRepository_GetTokens_Call {
	return &MockUserRepository_GetTokens_Call{Call: _e.mock.On("GetTokens", ctx, id)}
}

func (_c *MockUserRepository_GetTokens_Call) Run(run func(ctx context.Context, id string)) *MockUserRepository_GetTokens_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockUserRepository_GetTokens_Call) Return(_a0 int64, _a1 error) *MockUserRepository_GetTokens_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserRepository_GetTokens_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockUserRepository_GetTokens_Call {
	_c.Call.Return(run)
	return _c
}

// ApplyTokenDelta provides a mock function with given fields: ctx, id, delta, at
func (_m *MockUserRepository) ApplyTokenDelta(ctx context.Context, id string, delta int64, at time.Time) (persistence.TokenDelta, error) {
	ret := _m.Called(ctx, id, delta, at)

	if len(ret) == 0 {
		panic("no return value specified for ApplyTokenDelta")
	}

	var r0 persistence.TokenDelta
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64, time.Time) (persistence.TokenDelta, error)); ok {
		return rf(ctx, id, delta, at)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64, time.Time) persistence.TokenDelta); ok {
		r0 = rf(ctx, id, delta, at)
	} else {
		r0 = ret.Get(0).(persistence.TokenDelta)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int64, time.Time) error); ok {
		r1 = rf(ctx, id, delta, at)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserRepository_ApplyTokenDelta_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ApplyTokenDelta'
type MockUserRepository_ApplyTokenDelta_Call struct {
	*mock.Call
}

// ApplyTokenDelta is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) ApplyTokenDelta(ctx interface{}, id interface{}, delta interface{}, at interface{}) *MockUserRepository_ApplyTokenDelta_Call {
	return &MockUserRepository_ApplyTokenDelta_Call{Call: _e.mock.On("ApplyTokenDelta", ctx, id, delta, at)}
}

func (_c *MockUserRepository_ApplyTokenDelta_Call) Run(run func(ctx context.Context, id string, delta int64, at time.Time)) *MockUserRepository_ApplyTokenDelta_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64), args[3].(time.Time))
	})
	return _c
}

func (_c *MockUserRepository_ApplyTokenDelta_Call) Return(_a0 persistence.TokenDelta, _a1 error) *MockUserRepository_ApplyTokenDelta_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserRepository_ApplyTokenDelta_Call) RunAndReturn(run func(context.Context, string, int64, time.Time) (persistence.TokenDelta, error)) *MockUserRepository_ApplyTokenDelta_Call {
	_c.Call.Return(run)
	return _c
}

// UpgradeAccountType provides a mock function with given fields: ctx, id, at
func (_m *MockUserRepository) UpgradeAccountType(ctx context.Context, id string, at time.Time) (bool, error) {
	ret := _m.Called(ctx, id, at)

	if len(ret) == 0 {
		panic("no return value specified for UpgradeAccountType")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) (bool, error)); ok {
		return rf(ctx, id, at)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) bool); ok {
		r0 = rf(ctx, id, at)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, time.Time) error); ok {
		r1 = rf(ctx, id, at)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserRepository_UpgradeAccountType_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpgradeAccountType'
type MockUserRepository_UpgradeAccountType_Call struct {
	*mock.Call
}

// UpgradeAccountType is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) UpgradeAccountType(ctx interface{}, id interface{}, at interface{}) *MockUserRepository_UpgradeAccountType_Call {
	return &MockUserRepository_UpgradeAccountType_Call{Call: _e.mock.On("UpgradeAccountType", ctx, id, at)}
}

func (_c *MockUserRepository_UpgradeAccountType_Call) Run(run func(ctx context.Context, id string, at time.Time)) *MockUserRepository_UpgradeAccountType_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(time.Time))
	})
	return _c
}

func (_c *MockUserRepository_UpgradeAccountType_Call) Return(_a0 bool, _a1 error) *MockUserRepository_UpgradeAccountType_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserRepository_UpgradeAccountType_Call) RunAndReturn(run func(context.Context, string, time.Time) (bool, error)) *MockUserRepository_UpgradeAccountType_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserRepository creates a new instance of MockUserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	mock := &MockUserRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
