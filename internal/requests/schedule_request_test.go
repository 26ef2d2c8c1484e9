package requests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		request ScheduleRequests
		errMsg  string
	}{
		{"valid", ScheduleRequests{Jobs: []Job{{ProcessId: "P1", BurstTime: 2}}}, ""},
		{"no jobs", ScheduleRequests{}, ""},
		{"missing id", ScheduleRequests{Jobs: []Job{{BurstTime: 2}}}, "process_id is required"},
		{"reserved id", ScheduleRequests{Jobs: []Job{{ProcessId: core.IdleID, BurstTime: 2}}}, "reserved"},
		{"negative arrival", ScheduleRequests{Jobs: []Job{{ProcessId: "P1", ArrivalTime: -1, BurstTime: 2}}}, "arrival_time"},
		{"zero burst", ScheduleRequests{Jobs: []Job{{ProcessId: "P1"}}}, "burst_time"},
		{"duplicate", ScheduleRequests{Jobs: []Job{{ProcessId: "P1", BurstTime: 1}, {ProcessId: "P1", BurstTime: 1}}}, "already used"},
		{"negative quantum", ScheduleRequests{Jobs: []Job{{ProcessId: "P1", BurstTime: 1}}, TimeQuantum: -2}, "time_quantum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidJob)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProcesses_KeepsSubmissionOrder(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ProcessId: "B", ArrivalTime: 3, BurstTime: 1, Priority: 2},
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 4},
	}}

	assert.Equal(t, []core.Process{
		{ID: "B", Arrival: 3, Burst: 1, Priority: 2},
		{ID: "A", Arrival: 0, Burst: 4},
	}, request.Processes())
}

func TestLoadCSV(t *testing.T) {
	input := `# workload
id,burst,arrival,priority
P1,5,0,2
P2, 3, 1
P3,1,4,0
`
	jobs, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Job{
		{ProcessId: "P1", BurstTime: 5, ArrivalTime: 0, Priority: 2},
		{ProcessId: "P2", BurstTime: 3, ArrivalTime: 1},
		{ProcessId: "P3", BurstTime: 1, ArrivalTime: 4, Priority: 0},
	}, jobs)
}

func TestLoadCSV_WithoutHeader(t *testing.T) {
	jobs, err := LoadCSV(strings.NewReader("1,4,0\n2,2,3\n"))
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "2", jobs[1].ProcessId)
	assert.Equal(t, 3, jobs[1].ArrivalTime)
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"too few columns", "P1,5\n", "expected 3 or 4 columns"},
		{"too many columns", "P1,5,0,1,9\n", "expected 3 or 4 columns"},
		{"bad burst", "P1,5,0\nP2,x,1\n", `line 2: burst "x"`},
		{"bad burst in first row", "P1,x,0\nP2,3,1\n", `line 1: burst "x"`},
		{"misspelled header", "id,brust,arrival\nP1,3,0\n", `line 1: burst "brust"`},
		{"bad arrival", "P1,5,zero\n", `arrival "zero"`},
		{"bad priority", "P1,5,0,high\n", `priority "high"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrInvalidJob)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadCSV_ErrorLineCountsComments(t *testing.T) {
	input := "# workload\nID,Burst,Arrival\nP1,5,0\n\nP2,3,soon\n"

	_, err := LoadCSV(strings.NewReader(input))
	require.ErrorIs(t, err, ErrInvalidJob)
	assert.Contains(t, err.Error(), `line 5: arrival "soon"`)
}
