package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	details := []core.ProcessMetrics{
		{WaitingTime: 0, ResponseTime: 0, TurnaroundTime: 5},
		{WaitingTime: 4, ResponseTime: 4, TurnaroundTime: 7},
		{WaitingTime: 1, ResponseTime: 2, TurnaroundTime: 3},
	}

	waiting, response, turnaround := CalculateAverage(details)
	assert.InDelta(t, 5.0/3.0, waiting, 1e-9)
	assert.InDelta(t, 2.0, response, 1e-9)
	assert.InDelta(t, 5.0, turnaround, 1e-9)
}

func TestCalculateAverage_Empty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)
	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}
