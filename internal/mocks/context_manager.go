package mocks

import (
	"context"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// ContextManager is an autogenerated mock type for the ContextManager type
type ContextManager struct {
	mock.Mock
}

// GetSubjectFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetSubjectFromContext(ctx context.Context) model.Subject {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetSubjectFromContext")
	}

	var r0 model.Subject
	if rf, ok := ret.Get(0).(func(context.Context) model.Subject); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(model.Subject)
	}

	return r0
}

// SetSubjectToContext provides a mock function with given fields: ctx, subject
func (_m *ContextManager) SetSubjectToContext(ctx context.Context, subject model.Subject) context.Context {
	ret := _m.Called(ctx, subject)

	if len(ret) == 0 {
		panic("no return value specified for SetSubjectToContext")
	}

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject) context.Context); ok {
		r0 = rf(ctx, subject)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(context.Context)
		}
	}

	return r0
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	mock := &ContextManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
