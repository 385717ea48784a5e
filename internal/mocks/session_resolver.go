package mocks

import (
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// SessionResolver is an autogenerated mock type for the SessionResolver type
type SessionResolver struct {
	mock.Mock
}

// Resolve provides a mock function with given fields: token
func (_m *SessionResolver) Resolve(token string) model.Subject {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for Resolve")
	}

	var r0 model.Subject
	if rf, ok := ret.Get(0).(func(string) model.Subject); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.Subject)
	}

	return r0
}

// NewSessionResolver creates a new instance of SessionResolver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionResolver {
	mock := &SessionResolver{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
