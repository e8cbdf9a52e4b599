package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock type for the UserUseCase type
type MockUserUseCase struct {
	mock.Mock
}

type MockUserUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUseCase) EXPECT() *MockUserUseCase_Expecter {
	return &MockUserUseCase_Expecter{mock: &_m.Mock}
}

// EnsureAccount provides a mock function with given fields: ctx, identity
func (_m *MockUserUseCase) EnsureAccount(ctx context.Context, identity entity.Identity) (*entity.UserAccount, bool, error) {
	ret := _m.Called(ctx, identity)

	if len(ret) == 0 {
		panic("no return value specified for EnsureAccount")
	}

	var r0 *entity.UserAccount
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Identity) (*entity.UserAccount, bool, error)); ok {
		return rf(ctx, identity)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.Identity) *entity.UserAccount); ok {
		r0 = rf(ctx, identity)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.UserAccount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.Identity) bool); ok {
		r1 = rf(ctx, identity)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, entity.Identity) error); ok {
		r2 = rf(ctx, identity)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockUserUseCase_EnsureAccount_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'EnsureAccount'
type MockUserUseCase_EnsureAccount_Call struct {
	*mock.Call
}

// EnsureAccount is a helper method to define mock.On call
func (_e *MockUserUseCase_Expecter) EnsureAccount(ctx interface{}, identity interface{}) *MockUserUseCase_EnsureAccount_Call {
	return &MockUserUseCase_EnsureAccount_Call{Call: _e.mock.On("EnsureAccount", ctx, identity)}
}

func (_c *MockUserUseCase_EnsureAccount_Call) Run(run func(ctx context.Context, identity entity.Identity)) *MockUserUseCase_EnsureAccount_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.Identity))
	})
	return _c
}

func (_c *MockUserUseCase_EnsureAccount_Call) Return(_a0 *entity.UserAccount, _a1 bool, _a2 error) *MockUserUseCase_EnsureAccount_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockUserUseCase_EnsureAccount_Call) RunAndReturn(run func(context.Context, entity.Identity) (*entity.UserAccount, bool, error)) *MockUserUseCase_EnsureAccount_Call {
	_c.Call.Return(run)
	return _c
}

// GetProfile provides a mock function with given fields: ctx, userID
func (_m *MockUserUseCase) GetProfile(ctx context.Context, userID string) (*entity.UserAccount, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetProfile")
	}

	var r0 *entity.UserAccount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.UserAccount, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.UserAccount); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.UserAccount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUseCase_GetProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProfile'
type MockUserUseCase_GetProfile_Call struct {
	*mock.Call
}

// GetProfile is a helper method to define mock.On call
func (_e *MockUserUseCase_Expecter) GetProfile(ctx interface{}, userID interface{}) *MockUserUseCase_GetProfile_Call {
	return &MockUserUseCase_GetProfile_Call{Call: _e.mock.On("GetProfile", ctx, userID)}
}

func (_c *MockUserUseCase_GetProfile_Call) Run(run func(ctx context.Context, userID string)) *MockUserUseCase_GetProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockUserUseCase_GetProfile_Call) Return(_a0 *entity.UserAccount, _a1 error) *MockUserUseCase_GetProfile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUseCase_GetProfile_Call) RunAndReturn(run func(context.Context, string) (*entity.UserAccount, error)) *MockUserUseCase_GetProfile_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProfile provides a mock function with given fields: ctx, userID, update
func (_m *MockUserUseCase) UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.UserAccount, error) {
	ret := _m.Called(ctx, userID, update)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProfile")
	}

	var r0 *entity.UserAccount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.ProfileUpdate) (*entity.UserAccount, error)); ok {
		return rf(ctx, userID, update)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, entity.ProfileUpdate) *entity.UserAccount); ok {
		r0 = rf(ctx, userID, update)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.UserAccount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, entity.ProfileUpdate) error); ok {
		r1 = rf(ctx, userID, update)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUseCase_UpdateProfile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProfile'
type MockUserUseCase_UpdateProfile_Call struct {
	*mock.Call
}

// UpdateProfile is a helper method to define mock.On call
func (_e *MockUserUseCase_Expecter) UpdateProfile(ctx interface{}, userID interface{}, update interface{}) *MockUserUseCase_UpdateProfile_Call {
	return &MockUserUseCase_UpdateProfile_Call{Call: _e.mock.On("UpdateProfile", ctx, userID, update)}
}

func (_c *MockUserUseCase_UpdateProfile_Call) Run(run func(ctx context.Context, userID string, update entity.ProfileUpdate)) *MockUserUseCase_UpdateProfile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(entity.ProfileUpdate))
	})
	return _c
}

func (_c *MockUserUseCase_UpdateProfile_Call) Return(_a0 *entity.UserAccount, _a1 error) *MockUserUseCase_UpdateProfile_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUseCase_UpdateProfile_Call) RunAndReturn(run func(context.Context, string, entity.ProfileUpdate) (*entity.UserAccount, error)) *MockUserUseCase_UpdateProfile_Call {
	_c.Call.Return(run)
	return _c
}

// UpdatePreferences provides a mock function with given fields: ctx, userID, marketingOptIn
func (_m *MockUserUseCase) UpdatePreferences(ctx context.Context, userID string, marketingOptIn bool) (*entity.UserAccount, error) {
	ret := _m.Called(ctx, userID, marketingOptIn)

	if len(ret) == 0 {
		panic("no return value specified for UpdatePreferences")
	}

	var r0 *entity.UserAccount
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) (*entity.UserAccount, error)); ok {
		return rf(ctx, userID, marketingOptIn)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) *entity.UserAccount); ok {
		r0 = rf(ctx, userID, marketingOptIn)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.UserAccount)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, bool) error); ok {
		r1 = rf(ctx, userID, marketingOptIn)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUseCase_UpdatePreferences_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdatePreferences'
type MockUserUseCase_UpdatePreferences_Call struct {
	*mock.Call
}

// UpdatePreferences is a helper method to define mock.On call
func (_e *MockUserUseCase_Expecter) UpdatePreferences(ctx interface{}, userID interface{}, marketingOptIn interface{}) *MockUserUseCase_UpdatePreferences_Call {
	return &MockUserUseCase_UpdatePreferences_Call{Call: _e.mock.On("UpdatePreferences", ctx, userID, marketingOptIn)}
}

func (_c *MockUserUseCase_UpdatePreferences_Call) Run(run func(ctx context.Context, userID string, marketingOptIn bool)) *MockUserUseCase_UpdatePreferences_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(bool))
	})
	return _c
}

func (_c *MockUserUseCase_UpdatePreferences_Call) Return(_a0 *entity.UserAccount, _a1 error) *MockUserUseCase_UpdatePreferences_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUseCase_UpdatePreferences_Call) RunAndReturn(run func(context.Context, string, bool) (*entity.UserAccount, error)) *MockUserUseCase_UpdatePreferences_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserUseCase creates a new instance of MockUserUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUseCase {
	mock := &MockUserUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
