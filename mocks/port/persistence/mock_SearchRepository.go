package persistence

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockSearchRepository is a mock type for the SearchRepository type
type MockSearchRepository struct {
	mock.Mock
}

type MockSearchRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSearchRepository) EXPECT() *MockSearchRepository_Expecter {
	return &MockSearchRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, search
func (_m *MockSearchRepository) Create(ctx context.Context, search *entity.SearchRecord) error {
	ret := _m.Called(ctx, search)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.SearchRecord) error); ok {
		r0 = rf(ctx, search)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSearchRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockSearchRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockSearchRepository_Expecter) Create(ctx interface{}, search interface{}) *MockSearchRepository_Create_Call {
	return &MockSearchRepository_Create_Call{Call: _e.mock.On("Create", ctx, search)}
}

func (_c *MockSearchRepository_Create_Call) Run(run func(ctx context.Context, search *entity.SearchRecord)) *MockSearchRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.SearchRecord))
	})
	return _c
}

func (_c *MockSearchRepository_Create_Call) Return(_a0 error) *MockSearchRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSearchRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.SearchRecord) error) *MockSearchRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID, limit
func (_m *MockSearchRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchRecord, error) {
	ret := _m.Called(ctx, userID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
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

// MockSearchRepository_ListByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByUser'
type MockSearchRepository_ListByUser_Call struct {
	*mock.Call
}

// ListByUser is a helper method to define mock.On call
func (_e *MockSearchRepository_Expecter) ListByUser(ctx interface{}, userID interface{}, limit interface{}) *MockSearchRepository_ListByUser_Call {
	return &MockSearchRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID, limit)}
}

func (_c *MockSearchRepository_ListByUser_Call) Run(run func(ctx context.Context, userID string, limit int)) *MockSearchRepository_ListByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockSearchRepository_ListByUser_Call) Return(_a0 []*entity.SearchRecord, _a1 error) *MockSearchRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSearchRepository_ListByUser_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.SearchRecord, error)) *MockSearchRepository_ListByUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSearchRepository creates a new instance of MockSearchRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSearchRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSearchRepository {
	mock := &MockSearchRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
