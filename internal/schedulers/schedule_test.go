package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestRun_SingleProcess(t *testing.T) {
	processes := []core.Process{proc("only", 0, 6)}

	for _, d := range Disciplines(2) {
		if d.Kind() == KindRoundRobin {
			d = RoundRobin(10)
		}
		result, err := Run(processes, d)
		require.NoError(t, err)

		assertTimeline(t, core.Timeline{block("only", 0, 6)}, result.Timeline)
		assert.Equal(t, core.ProcessMetrics{CompletionTime: 6, TurnaroundTime: 6}, result.Metrics["only"], d.String())
		assert.Equal(t, 6, result.Summary.Makespan)
	}
}

func TestRun_Idempotent(t *testing.T) {
	processes := []core.Process{
		{ID: "P1", Arrival: 0, Burst: 8, Priority: 3},
		{ID: "P2", Arrival: 1, Burst: 4, Priority: 1},
		{ID: "P3", Arrival: 2, Burst: 9, Priority: 2},
		{ID: "P4", Arrival: 3, Burst: 5, Priority: 1},
		{ID: "P5", Arrival: 30, Burst: 2, Priority: 0},
	}

	for _, d := range Disciplines(3) {
		first, err := Run(processes, d)
		require.NoError(t, err)
		second, err := Run(processes, d)
		require.NoError(t, err)
		assert.Equal(t, first, second, d.String())
	}
}

func TestRun_EmptyInput(t *testing.T) {
	result, err := Run(nil, FCFS())
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, result)
}

func TestRun_PropagatesInvalidQuantum(t *testing.T) {
	result, err := Run([]core.Process{proc("P1", 0, 1)}, RoundRobin(0))
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Nil(t, result)
}

func TestRunAll(t *testing.T) {
	processes := []core.Process{proc("P1", 0, 5), proc("P2", 1, 3)}

	results, err := RunAll(processes, 2)
	require.NoError(t, err)
	require.Len(t, results, 4)

	kinds := make([]Kind, len(results))
	for i, r := range results {
		kinds[i] = r.Discipline.Kind()
	}
	assert.Equal(t, []Kind{KindFirstComeFirstServe, KindShortestJobFirst, KindPriority, KindRoundRobin}, kinds)
	assert.Equal(t, 2, results[3].Discipline.Quantum())
}

func TestRunAll_InvalidQuantum(t *testing.T) {
	_, err := RunAll([]core.Process{proc("P1", 0, 5)}, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
