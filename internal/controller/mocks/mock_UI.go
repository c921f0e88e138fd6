// Package mocks provides a testify mock of controller.UI.
package mocks

import (
	model "github.com/mouse-blink/bracemend/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// MockUI is a mock type for the UI type
type MockUI struct {
	mock.Mock
}

// DisplayDiagnoses provides a mock function with given fields: diags
func (_m *MockUI) DisplayDiagnoses(diags []model.Diagnosis) error {
	ret := _m.Called(diags)

	if len(ret) == 0 {
		panic("no return value specified for DisplayDiagnoses")
	}

	if rf, ok := ret.Get(0).(func([]model.Diagnosis) error); ok {
		return rf(diags)
	}

	return ret.Error(0)
}

// DisplayRepairResults provides a mock function with given fields: results
func (_m *MockUI) DisplayRepairResults(results []model.Result) error {
	ret := _m.Called(results)

	if len(ret) == 0 {
		panic("no return value specified for DisplayRepairResults")
	}

	if rf, ok := ret.Get(0).(func([]model.Result) error); ok {
		return rf(results)
	}

	return ret.Error(0)
}

// DisplayWatchEvent provides a mock function with given fields: diag
func (_m *MockUI) DisplayWatchEvent(diag model.Diagnosis) {
	_m.Called(diag)
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	m := &MockUI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
