// Package mocks provides testify mocks of the adapter interfaces.
package mocks

import (
	os "os"

	adapter "github.com/mouse-blink/bracemend/internal/adapter"
	model "github.com/mouse-blink/bracemend/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockSourceFSAdapter is a mock type for the SourceFSAdapter type
type MockSourceFSAdapter struct {
	mock.Mock
}

// FileInfo provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) FileInfo(path model.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for FileInfo")
	}

	var r0 os.FileInfo
	if rf, ok := ret.Get(0).(func(model.Path) os.FileInfo); ok {
		r0 = rf(path)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(os.FileInfo)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(model.Path) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: roots, extensions
func (_m *MockSourceFSAdapter) Get(roots []model.Path, extensions []string) ([]model.Path, error) {
	ret := _m.Called(roots, extensions)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 []model.Path
	if rf, ok := ret.Get(0).(func([]model.Path, []string) []model.Path); ok {
		r0 = rf(roots, extensions)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Path)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func([]model.Path, []string) error); ok {
		r1 = rf(roots, extensions)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ReadFile provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) ReadFile(path model.Path) ([]byte, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for ReadFile")
	}

	var r0 []byte
	if rf, ok := ret.Get(0).(func(model.Path) []byte); ok {
		r0 = rf(path)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(model.Path) error); ok {
		r1 = rf(path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Walk provides a mock function with given fields: root, recursive, fn
func (_m *MockSourceFSAdapter) Walk(root model.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, recursive, fn)

	if len(ret) == 0 {
		panic("no return value specified for Walk")
	}

	if rf, ok := ret.Get(0).(func(model.Path, bool, adapter.FilepathWalkFunc) error); ok {
		return rf(root, recursive, fn)
	}

	return ret.Error(0)
}

// WriteFile provides a mock function with given fields: path, content
func (_m *MockSourceFSAdapter) WriteFile(path model.Path, content []byte) error {
	ret := _m.Called(path, content)

	if len(ret) == 0 {
		panic("no return value specified for WriteFile")
	}

	if rf, ok := ret.Get(0).(func(model.Path, []byte) error); ok {
		return rf(path, content)
	}

	return ret.Error(0)
}

// NewMockSourceFSAdapter creates a new instance of MockSourceFSAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	m := &MockSourceFSAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
