// Package mocks provides a testify mock of domain.Workflow.
package mocks

import (
	context "context"

	domain "github.com/mouse-blink/bracemend/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock type for the Workflow type
type MockWorkflow struct {
	mock.Mock
}

type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Check provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Check(ctx context.Context, args domain.CheckArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Check")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.CheckArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// Repair provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Repair(ctx context.Context, args domain.RepairArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Repair")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.RepairArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// Watch provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Watch(ctx context.Context, args domain.WatchArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Watch")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.WatchArgs) error); ok {
		return rf(ctx, args)
	}

	return ret.Error(0)
}

// MockWorkflow_Check_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Check'
type MockWorkflow_Check_Call struct {
	*mock.Call
}

// Check is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.CheckArgs
func (_e *MockWorkflow_Expecter) Check(ctx interface{}, args interface{}) *MockWorkflow_Check_Call {
	return &MockWorkflow_Check_Call{Call: _e.mock.On("Check", ctx, args)}
}

func (_c *MockWorkflow_Check_Call) Run(run func(ctx context.Context, args domain.CheckArgs)) *MockWorkflow_Check_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.CheckArgs))
	})
	return _c
}

func (_c *MockWorkflow_Check_Call) Return(_a0 error) *MockWorkflow_Check_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Check_Call) RunAndReturn(run func(context.Context, domain.CheckArgs) error) *MockWorkflow_Check_Call {
	_c.Call.Return(run)
	return _c
}

// MockWorkflow_Repair_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Repair'
type MockWorkflow_Repair_Call struct {
	*mock.Call
}

// Repair is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.RepairArgs
func (_e *MockWorkflow_Expecter) Repair(ctx interface{}, args interface{}) *MockWorkflow_Repair_Call {
	return &MockWorkflow_Repair_Call{Call: _e.mock.On("Repair", ctx, args)}
}

func (_c *MockWorkflow_Repair_Call) Run(run func(ctx context.Context, args domain.RepairArgs)) *MockWorkflow_Repair_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.RepairArgs))
	})
	return _c
}

func (_c *MockWorkflow_Repair_Call) Return(_a0 error) *MockWorkflow_Repair_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Repair_Call) RunAndReturn(run func(context.Context, domain.RepairArgs) error) *MockWorkflow_Repair_Call {
	_c.Call.Return(run)
	return _c
}

// MockWorkflow_Watch_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Watch'
type MockWorkflow_Watch_Call struct {
	*mock.Call
}

// Watch is a helper method to define mock.On call
//   - ctx context.Context
//   - args domain.WatchArgs
func (_e *MockWorkflow_Expecter) Watch(ctx interface{}, args interface{}) *MockWorkflow_Watch_Call {
	return &MockWorkflow_Watch_Call{Call: _e.mock.On("Watch", ctx, args)}
}

func (_c *MockWorkflow_Watch_Call) Run(run func(ctx context.Context, args domain.WatchArgs)) *MockWorkflow_Watch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.WatchArgs))
	})
	return _c
}

func (_c *MockWorkflow_Watch_Call) Return(_a0 error) *MockWorkflow_Watch_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockWorkflow_Watch_Call) RunAndReturn(run func(context.Context, domain.WatchArgs) error) *MockWorkflow_Watch_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
