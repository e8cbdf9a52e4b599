package gateway

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockIdentityVerifier is a mock type for the IdentityVerifier type
type MockIdentityVerifier struct {
	mock.Mock
}

type MockIdentityVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockIdentityVerifier) EXPECT() *MockIdentityVerifier_Expecter {
	return &MockIdentityVerifier_Expecter{mock: &_m.Mock}
}

// Verify provides a mock function with given fields: ctx, token
func (_m *MockIdentityVerifier) Verify(ctx context.Context, token string) (entity.Identity, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 entity.Identity
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (entity.Identity, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) entity.Identity); ok {
		r0 = rf(ctx, token)
	} else {
		r0 = ret.Get(0).(entity.Identity)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockIdentityVerifier_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockIdentityVerifier_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
func (_e *MockIdentityVerifier_Expecter) Verify(ctx interface{}, token interface{}) *MockIdentityVerifier_Verify_Call {
	return &MockIdentityVerifier_Verify_Call{Call: _e.mock.On("Verify", ctx, token)}
}

func (_c *MockIdentityVerifier_Verify_Call) Run(run func(ctx context.Context, token string)) *MockIdentityVerifier_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockIdentityVerifier_Verify_Call) Return(_a0 entity.Identity, _a1 error) *MockIdentityVerifier_Verify_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockIdentityVerifier_Verify_Call) RunAndReturn(run func(context.Context, string) (entity.Identity, error)) *MockIdentityVerifier_Verify_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockIdentityVerifier creates a new instance of MockIdentityVerifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockIdentityVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityVerifier {
	mock := &MockIdentityVerifier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
