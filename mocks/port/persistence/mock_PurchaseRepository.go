package persistence

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockPurchaseRepository is a mock type for the PurchaseRepository type
type MockPurchaseRepository struct {
	mock.Mock
}

type MockPurchaseRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPurchaseRepository) EXPECT() *MockPurchaseRepository_Expecter {
	return &MockPurchaseRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, purchase
func (_m *MockPurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	ret := _m.Called(ctx, purchase)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Purchase) error); ok {
		r0 = rf(ctx, purchase)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPurchaseRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockPurchaseRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockPurchaseRepository_Expecter) Create(ctx interface{}, purchase interface{}) *MockPurchaseRepository_Create_Call {
	return &MockPurchaseRepository_Create_Call{Call: _e.mock.On("Create", ctx, purchase)}
}

func (_c *MockPurchaseRepository_Create_Call) Run(run func(ctx context.Context, purchase *entity.Purchase)) *MockPurchaseRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Purchase))
	})
	return _c
}

func (_c *MockPurchaseRepository_Create_Call) Return(_a0 error) *MockPurchaseRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockPurchaseRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Purchase) error) *MockPurchaseRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// GetBySessionID provides a mock function with given fields: ctx, sessionID
func (_m *MockPurchaseRepository) GetBySessionID(ctx context.Context, sessionID string) (*entity.Purchase, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetBySessionID")
	}

	var r0 *entity.Purchase
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Purchase, error)); ok {
		return rf(ctx, sessionID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Purchase); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Purchase)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPurchaseRepository_GetBySessionID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBySessionID'
type MockPurchaseRepository_GetBySessionID_Call struct {
	*mock.Call
}

// GetBySessionID is a helper method to define mock.On call
func (_e *MockPurchaseRepository_Expecter) GetBySessionID(ctx interface{}, sessionID interface{}) *MockPurchaseRepository_GetBySessionID_Call {
	return &MockPurchaseRepository_GetBySessionID_Call{Call: _e.mock.On("GetBySessionID", ctx, sessionID)}
}

func (_c *MockPurchaseRepository_GetBySessionID_Call) Run(run func(ctx context.Context, sessionID string)) *MockPurchaseRepository_GetBySessionID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockPurchaseRepository_GetBySessionID_Call) Return(_a0 *entity.Purchase, _a1 error) *MockPurchaseRepository_GetBySessionID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPurchaseRepository_GetBySessionID_Call) RunAndReturn(run func(context.Context, string) (*entity.Purchase, error)) *MockPurchaseRepository_GetBySessionID_Call {
	_c.Call.Return(run)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID, limit
func (_m *MockPurchaseRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Purchase, error) {
	ret := _m.Called(ctx, userID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
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

// MockPurchaseRepository_ListByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByUser'
type MockPurchaseRepository_ListByUser_Call struct {
	*mock.Call
}

// ListByUser is a helper method to define mock.On call
func (_e *MockPurchaseRepository_Expecter) ListByUser(ctx interface{}, userID interface{}, limit interface{}) *MockPurchaseRepository_ListByUser_Call {
	return &MockPurchaseRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID, limit)}
}

func (_c *MockPurchaseRepository_ListByUser_Call) Run(run func(ctx context.Context, userID string, limit int)) *MockPurchaseRepository_ListByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockPurchaseRepository_ListByUser_Call) Return(_a0 []*entity.Purchase, _a1 error) *MockPurchaseRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPurchaseRepository_ListByUser_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.Purchase, error)) *MockPurchaseRepository_ListByUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPurchaseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPurchaseRepository {
	mock := &MockPurchaseRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
