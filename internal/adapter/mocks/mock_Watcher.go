package mocks

import (
	context "context"

	model "github.com/mouse-blink/bracemend/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockWatcher is a mock type for the Watcher type
type MockWatcher struct {
	mock.Mock
}

// Watch provides a mock function with given fields: ctx, files, onChange
func (_m *MockWatcher) Watch(ctx context.Context, files []model.Path, onChange func(model.Path)) error {
	ret := _m.Called(ctx, files, onChange)

	if len(ret) == 0 {
		panic("no return value specified for Watch")
	}

	if rf, ok := ret.Get(0).(func(context.Context, []model.Path, func(model.Path)) error); ok {
		return rf(ctx, files, onChange)
	}

	return ret.Error(0)
}

// NewMockWatcher creates a new instance of MockWatcher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWatcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWatcher {
	m := &MockWatcher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
