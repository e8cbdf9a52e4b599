package gateway

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"

	mock "github.com/stretchr/testify/mock"
)

// MockPaymentGateway is a mock type for the PaymentGateway type
type MockPaymentGateway struct {
	mock.Mock
}

type MockPaymentGateway_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentGateway) EXPECT() *MockPaymentGateway_Expecter {
	return &MockPaymentGateway_Expecter{mock: &_m.Mock}
}

// CreateCheckoutSession provides a mock function with given fields: ctx, req
func (_m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateCheckoutSession")
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

// MockPaymentGateway_CreateCheckoutSession_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateCheckoutSession'
type MockPaymentGateway_CreateCheckoutSession_Call struct {
	*mock.Call
}

// CreateCheckoutSession is a helper method to define mock.On call
func (_e *MockPaymentGateway_Expecter) CreateCheckoutSession(ctx interface{}, req interface{}) *MockPaymentGateway_CreateCheckoutSession_Call {
	return &MockPaymentGateway_CreateCheckoutSession_Call{Call: _e.mock.On("CreateCheckoutSession", ctx, req)}
}

func (_c *MockPaymentGateway_CreateCheckoutSession_Call) Run(run func(ctx context.Context, req entity.CheckoutRequest)) *MockPaymentGateway_CreateCheckoutSession_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.CheckoutRequest))
	})
	return _c
}

func (_c *MockPaymentGateway_CreateCheckoutSession_Call) Return(_a0 *entity.CheckoutSession, _a1 error) *MockPaymentGateway_CreateCheckoutSession_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentGateway_CreateCheckoutSession_Call) RunAndReturn(run func(context.Context, entity.CheckoutRequest) (*entity.CheckoutSession, error)) *MockPaymentGateway_CreateCheckoutSession_Call {
	_c.Call.Return(run)
	return _c
}

// VerifyWebhook provides a mock function with given fields: payload, signature
func (_m *MockPaymentGateway) VerifyWebhook(payload []byte, signature string) (*gateway.PaymentEvent, error) {
	ret := _m.Called(payload, signature)

	if len(ret) == 0 {
		panic("no return value specified for VerifyWebhook")
	}

	var r0 *gateway.PaymentEvent
	var r1 error
	if rf, ok := ret.Get(0).(func([]byte, string) (*gateway.PaymentEvent, error)); ok {
		return rf(payload, signature)
	}
	if rf, ok := ret.Get(0).(func([]byte, string) *gateway.PaymentEvent); ok {
		r0 = rf(payload, signature)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*gateway.PaymentEvent)
		}
	}

	if rf, ok := ret.Get(1).(func([]byte, string) error); ok {
		r1 = rf(payload, signature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPaymentGateway_VerifyWebhook_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'VerifyWebhook'
type MockPaymentGateway_VerifyWebhook_Call struct {
	*mock.Call
}

// VerifyWebhook is a helper method to define mock.On call
func (_e *MockPaymentGateway_Expecter) VerifyWebhook(payload interface{}, signature interface{}) *MockPaymentGateway_VerifyWebhook_Call {
	return &MockPaymentGateway_VerifyWebhook_Call{Call: _e.mock.On("VerifyWebhook", payload, signature)}
}

func (_c *MockPaymentGateway_VerifyWebhook_Call) Run(run func(payload []byte, signature string)) *MockPaymentGateway_VerifyWebhook_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].([]byte), args[1].(string))
	})
	return _c
}

func (_c *MockPaymentGateway_VerifyWebhook_Call) Return(_a0 *gateway.PaymentEvent, _a1 error) *MockPaymentGateway_VerifyWebhook_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPaymentGateway_VerifyWebhook_Call) RunAndReturn(run func([]byte, string) (*gateway.PaymentEvent, error)) *MockPaymentGateway_VerifyWebhook_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPaymentGateway creates a new instance of MockPaymentGateway. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentGateway {
	mock := &MockPaymentGateway{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
