package mocks

import (
	"context"

	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// NoteStore is an autogenerated mock type for the NoteStore type
type NoteStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, note
func (_m *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	ret := _m.Called(ctx, note)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Note) (model.Note, error)); ok {
		return rf(ctx, note)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Note) model.Note); ok {
		r0 = rf(ctx, note)
	} else {
		r0 = ret.Get(0).(model.Note)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Note) error); ok {
		r1 = rf(ctx, note)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *NoteStore) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *NoteStore) GetByID(ctx context.Context, id int64) (model.Note, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (model.Note, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) model.Note); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Note)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListVisible provides a mock function with given fields: ctx, viewer
func (_m *NoteStore) ListVisible(ctx context.Context, viewer *uuid.UUID) ([]model.Note, error) {
	ret := _m.Called(ctx, viewer)

	if len(ret) == 0 {
		panic("no return value specified for ListVisible")
	}

	var r0 []model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *uuid.UUID) ([]model.Note, error)); ok {
		return rf(ctx, viewer)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *uuid.UUID) []model.Note); ok {
		r0 = rf(ctx, viewer)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.Note)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *uuid.UUID) error); ok {
		r1 = rf(ctx, viewer)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, note
func (_m *NoteStore) Update(ctx context.Context, note model.Note) (model.Note, error) {
	ret := _m.Called(ctx, note)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 model.Note
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Note) (model.Note, error)); ok {
		return rf(ctx, note)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Note) model.Note); ok {
		r0 = rf(ctx, note)
	} else {
		r0 = ret.Get(0).(model.Note)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Note) error); ok {
		r1 = rf(ctx, note)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewNoteStore creates a new instance of NoteStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewNoteStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *NoteStore {
	mock := &NoteStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
