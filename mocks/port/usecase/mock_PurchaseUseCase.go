package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockPurchaseUseCase is a mock type for the PurchaseUseCase type
type MockPurchaseUseCase struct {
	mock.Mock
}

type MockPurchaseUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPurchaseUseCase) EXPECT() *MockPurchaseUseCase_Expecter {
	return &MockPurchaseUseCase_Expecter{mock: &_m.Mock}
}

// CreateCheckout provides a mock function with given fields: ctx, req
func (_m *MockPurchaseUseCase) CreateCheckout(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateCheckout")
	}

	var r0 *entity.CheckoutSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.CheckoutRequest) (*entity.CheckoutSession, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.CheckoutRequest) *entity.CheckoutSession); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.CheckoutSession)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.CheckoutRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPurchaseUseCase_CreateCheckout_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateCheckout'
type MockPurchaseUseCase_CreateCheckout_Call struct {
	*mock.Call
}

// CreateCheckout is a helper method to define mock.On call
func (_e *MockPurchaseUseCase_Expecter) CreateCheckout(ctx interface{}, req interface{}) *MockPurchaseUseCase_CreateCheckout_Call {
	return &MockPurchaseUseCase_CreateCheckout_Call{Call: _e.mock.On("CreateCheckout", ctx, req)}
}

func (_c *MockPurchaseUseCase_CreateCheckout_Call) Run(run func(ctx context.Context, req entity.CheckoutRequest)) *MockPurchaseUseCase_CreateCheckout_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.CheckoutRequest))
	})
	return _c
}

func (_c *MockPurchaseUseCase_CreateCheckout_Call) Return(_a0 *entity.CheckoutSession, _a1 error) *MockPurchaseUseCase_CreateCheckout_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPurchaseUseCase_CreateCheckout_Call) RunAndReturn(run func(context.Context, entity.CheckoutRequest) (*entity.CheckoutSession, error)) *MockPurchaseUseCase_CreateCheckout_Call {
	_c.Call.Return(run)
	return _c
}

// FulfillCheckout provides a mock function with given fields: ctx, completion
func (_m *MockPurchaseUseCase) FulfillCheckout(ctx context.Context, completion entity.CheckoutCompletion) (*entity.FulfillmentResult, error) {
	ret := _m.Called(ctx, completion)

	if len(ret) == 0 {
		panic("no return value specified for FulfillCheckout")
	}

	var r0 *entity.FulfillmentResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.CheckoutCompletion) (*entity.FulfillmentResult, error)); ok {
		return rf(ctx, completion)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.CheckoutCompletion) *entity.FulfillmentResult); ok {
		r0 = rf(ctx, completion)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.FulfillmentResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.CheckoutCompletion) error); ok {
		r1 = rf(ctx, completion)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPurchaseUseCase_FulfillCheckout_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FulfillCheckout'
type MockPurchaseUseCase_FulfillCheckout_Call struct {
	*mock.Call
}

// FulfillCheckout is a helper method to define mock.On call
func (_e *MockPurchaseUseCase_Expecter) FulfillCheckout(ctx interface{}, completion interface{}) *MockPurchaseUseCase_FulfillCheckout_Call {
	return &MockPurchaseUseCase_FulfillCheckout_Call{Call: _e.mock.On("FulfillCheckout", ctx, completion)}
}

func (_c *MockPurchaseUseCase_FulfillCheckout_Call) Run(run func(ctx context.Context, completion entity.CheckoutCompletion)) *MockPurchaseUseCase_FulfillCheckout_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.CheckoutCompletion))
	})
	return _c
}

func (_c *MockPurchaseUseCase_FulfillCheckout_Call) Return(_a0 *entity.FulfillmentResult, _a1 error) *MockPurchaseUseCase_FulfillCheckout_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPurchaseUseCase_FulfillCheckout_Call) RunAndReturn(run func(context.Context, entity.CheckoutCompletion) (*entity.FulfillmentResult, error)) *MockPurchaseUseCase_FulfillCheckout_Call {
	_c.Call.Return(run)
	return _c
}

// HandleWebhook provides a mock function with given fields: ctx, payload, signature
func (_m *MockPurchaseUseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) (*entity.FulfillmentResult, error) {
	ret := _m.Called(ctx, payload, signature)

	if len(ret) == 0 {
		panic("no return value specified for HandleWebhook")
	}

	var r0 *entity.FulfillmentResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, []byte, string) (*entity.FulfillmentResult, error)); ok {
		return rf(ctx, payload, signature)
	}
	if rf, ok := ret.Get(0).(func(context.Context, []byte, string) *entity.FulfillmentResult); ok {
		r0 = rf(ctx, payload, signature)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.FulfillmentResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, []byte, string) error); ok {
		r1 = rf(ctx, payload, signature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPurchaseUseCase_HandleWebhook_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HandleWebhook'
type MockPurchaseUseCase_HandleWebhook_Call struct {
	*mock.Call
}

// HandleWebhook is a helper method to define mock.On call
func (_e *MockPurchaseUseCase_Expecter) HandleWebhook(ctx interface{}, payload interface{}, signature interface{}) *MockPurchaseUseCase_HandleWebhook_Call {
	return &MockPurchaseUseCase_HandleWebhook_Call{Call: _e.mock.On("HandleWebhook", ctx, payload, signature)}
}

func (_c *MockPurchaseUseCase_HandleWebhook_Call) Run(run func(ctx context.Context, payload []byte, signature string)) *MockPurchaseUseCase_HandleWebhook_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].([]byte), args[2].(string))
	})
	return _c
}

func (_c *MockPurchaseUseCase_HandleWebhook_Call) Return(_a0 *entity.FulfillmentResult, _a1 error) *MockPurchaseUseCase_HandleWebhook_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPurchaseUseCase_HandleWebhook_Call) RunAndReturn(run func(context.Context, []byte, string) (*entity.FulfillmentResult, error)) *MockPurchaseUseCase_HandleWebhook_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPurchaseUseCase creates a new instance of MockPurchaseUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPurchaseUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPurchaseUseCase {
	mock := &MockPurchaseUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
