package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Accepted(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   bool
	}{
		{name: "balanced output", result: Result{After: RepairReport{LineCount: 3}}, want: true},
		{name: "unbalanced output", result: Result{After: RepairReport{NetBalance: 1}}, want: false},
		{name: "failed repair", result: Result{Err: errors.New("marker not found")}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Accepted())
		})
	}
}

func TestDiagnosis_Healthy(t *testing.T) {
	assert.True(t, Diagnosis{NegativeLine: -1}.Healthy())
	assert.False(t, Diagnosis{NegativeLine: 2}.Healthy())
	assert.False(t, Diagnosis{NegativeLine: -1, Report: RepairReport{NetBalance: 2}}.Healthy())
	assert.False(t, Diagnosis{NegativeLine: -1, Err: errors.New("gone")}.Healthy())
}
