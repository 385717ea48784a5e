package mocks

import (
	"context"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// AuthService is an autogenerated mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

// Authenticate provides a mock function with given fields: ctx, creds
func (_m *AuthService) Authenticate(ctx context.Context, creds model.Credentials) (model.UserSummary, error) {
	ret := _m.Called(ctx, creds)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 model.UserSummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Credentials) (model.UserSummary, error)); ok {
		return rf(ctx, creds)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Credentials) model.UserSummary); ok {
		r0 = rf(ctx, creds)
	} else {
		r0 = ret.Get(0).(model.UserSummary)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Credentials) error); ok {
		r1 = rf(ctx, creds)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CurrentUser provides a mock function with given fields: ctx, subject
func (_m *AuthService) CurrentUser(ctx context.Context, subject model.Subject) (model.UserSummary, error) {
	ret := _m.Called(ctx, subject)

	if len(ret) == 0 {
		panic("no return value specified for CurrentUser")
	}

	var r0 model.UserSummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject) (model.UserSummary, error)); ok {
		return rf(ctx, subject)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject) model.UserSummary); ok {
		r0 = rf(ctx, subject)
	} else {
		r0 = ret.Get(0).(model.UserSummary)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Subject) error); ok {
		r1 = rf(ctx, subject)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Login provides a mock function with given fields: ctx, creds
func (_m *AuthService) Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error) {
	ret := _m.Called(ctx, creds)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 model.LoginResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Credentials) (model.LoginResult, error)); ok {
		return rf(ctx, creds)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Credentials) model.LoginResult); ok {
		r0 = rf(ctx, creds)
	} else {
		r0 = ret.Get(0).(model.LoginResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Credentials) error); ok {
		r1 = rf(ctx, creds)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Register provides a mock function with given fields: ctx, params
func (_m *AuthService) Register(ctx context.Context, params model.RegisterParams) (model.UserSummary, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for Register")
	}

	var r0 model.UserSummary
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.RegisterParams) (model.UserSummary, error)); ok {
		return rf(ctx, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.RegisterParams) model.UserSummary); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.UserSummary)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.RegisterParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RenewSession provides a mock function with given fields: ctx, subject
func (_m *AuthService) RenewSession(ctx context.Context, subject model.Subject) (model.LoginResult, error) {
	ret := _m.Called(ctx, subject)

	if len(ret) == 0 {
		panic("no return value specified for RenewSession")
	}

	var r0 model.LoginResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject) (model.LoginResult, error)); ok {
		return rf(ctx, subject)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject) model.LoginResult); ok {
		r0 = rf(ctx, subject)
	} else {
		r0 = ret.Get(0).(model.LoginResult)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Subject) error); ok {
		r1 = rf(ctx, subject)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	mock := &AuthService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
