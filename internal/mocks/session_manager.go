package mocks

import (
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SessionManager is an autogenerated mock type for the SessionManager type
type SessionManager struct {
	mock.Mock
}

// Decode provides a mock function with given fields: token
func (_m *SessionManager) Decode(token string) (model.Session, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for Decode")
	}

	var r0 model.Session
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (model.Session, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) model.Session); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.Session)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Issue provides a mock function with given fields: userID
func (_m *SessionManager) Issue(userID uuid.UUID) (string, model.Session, error) {
	ret := _m.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 string
	var r1 model.Session
	var r2 error
	if rf, ok := ret.Get(0).(func(uuid.UUID) (string, model.Session, error)); ok {
		return rf(userID)
	}
	if rf, ok := ret.Get(0).(func(uuid.UUID) string); ok {
		r0 = rf(userID)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(uuid.UUID) model.Session); ok {
		r1 = rf(userID)
	} else {
		r1 = ret.Get(1).(model.Session)
	}

	if rf, ok := ret.Get(2).(func(uuid.UUID) error); ok {
		r2 = rf(userID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// Resolve provides a mock function with given fields: token
func (_m *SessionManager) Resolve(token string) model.Subject {
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

// NewSessionManager creates a new instance of SessionManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionManager {
	mock := &SessionManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
