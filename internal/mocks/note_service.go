package mocks

import (
	"context"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// NoteService is an autogenerated mock type for the NoteService type
type NoteService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, subject, params
func (_m *NoteService) Create(ctx context.Context, subject model.Subject, params model.CreateNoteParams) (model.Note, error) {
	ret := _m.Called(ctx, subject, params)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, model.CreateNoteParams) (model.Note, error)); ok {
		return rf(ctx, subject, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, model.CreateNoteParams) model.Note); ok {
		r0 = rf(ctx, subject, params)
	} else {
		r0 = ret.Get(0).(model.Note)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Subject, model.CreateNoteParams) error); ok {
		r1 = rf(ctx, subject, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, subject, id
func (_m *NoteService) Delete(ctx context.Context, subject model.Subject, id int64) (model.Note, error) {
	ret := _m.Called(ctx, subject, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, int64) (model.Note, error)); ok {
		return rf(ctx, subject, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, int64) model.Note); ok {
		r0 = rf(ctx, subject, id)
	} else {
		r0 = ret.Get(0).(model.Note)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Subject, int64) error); ok {
		r1 = rf(ctx, subject, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, subject, id
func (_m *NoteService) Get(ctx context.Context, subject model.Subject, id int64) (model.Note, error) {
	ret := _m.Called(ctx, subject, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, int64) (model.Note, error)); ok {
		return rf(ctx, subject, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, int64) model.Note); ok {
		r0 = rf(ctx, subject, id)
	} else {
		r0 = ret.Get(0).(model.Note)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Subject, int64) error); ok {
		r1 = rf(ctx, subject, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// List provides a mock function with given fields: ctx, subject
func (_m *NoteService) List(ctx context.Context, subject model.Subject) ([]model.Note, error) {
	ret := _m.Called(ctx, subject)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject) ([]model.Note, error)); ok {
		return rf(ctx, subject)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject) []model.Note); ok {
		r0 = rf(ctx, subject)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Note)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Subject) error); ok {
		r1 = rf(ctx, subject)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, subject, id, params
func (_m *NoteService) Update(ctx context.Context, subject model.Subject, id int64, params model.UpdateNoteParams) (model.Note, error) {
	ret := _m.Called(ctx, subject, id, params)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, int64, model.UpdateNoteParams) (model.Note, error)); ok {
		return rf(ctx, subject, id, params)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Subject, int64, model.UpdateNoteParams) model.Note); ok {
		r0 = rf(ctx, subject, id, params)
	} else {
		r0 = ret.Get(0).(model.Note)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Subject, int64, model.UpdateNoteParams) error); ok {
		r1 = rf(ctx, subject, id, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewNoteService creates a new instance of NoteService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewNoteService(t interface {
	mock.TestingT
	Cleanup(func())
}) *NoteService {
	mock := &NoteService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
