package mocks

import (
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// AccessController is an autogenerated mock type for the AccessController type
type AccessController struct {
	mock.Mock
}

// Authorize provides a mock function with given fields: subject, note, op
func (_m *AccessController) Authorize(subject model.Subject, note model.NoteRef, op model.Operation) model.Decision {
	ret := _m.Called(subject, note, op)

	if len(ret) == 0 {
		panic("no return value specified for Authorize")
	}

	var r0 model.Decision
	if rf, ok := ret.Get(0).(func(model.Subject, model.NoteRef, model.Operation) model.Decision); ok {
		r0 = rf(subject, note, op)
	} else {
		r0 = ret.Get(0).(model.Decision)
	}

	return r0
}

// NewAccessController creates a new instance of AccessController. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAccessController(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccessController {
	mock := &AccessController{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
