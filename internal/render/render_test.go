package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/responses"
)

func sampleResponse() responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm:             "RoundRobin",
		TimeQuantum:           2,
		TotalTime:             8,
		AverageWaitingTime:    3,
		AverageTurnAroundTime: 7,
		AverageResponseTime:   0.5,
		CpuUtilization:        1,
		CpuThroughput:         0.25,
		Timeline: []responses.GanttBlock{
			{ProcessId: "P1", Start: 0, End: 2},
			{ProcessId: "P2", Start: 2, End: 4},
			{ProcessId: "P1", Start: 4, End: 8},
		},
		Details: []responses.ProcessResponse{
			{ProcessId: "P1", BurstTime: 5, CompletionTime: 8, TurnAroundTime: 8, WaitingTime: 3},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 3, CompletionTime: 7, TurnAroundTime: 6, WaitingTime: 3, ResponseTime: 1},
		},
	}
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, sampleResponse().Timeline)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "Gantt chart", lines[0])
	assert.Equal(t, "| P1 | P2 |  P1  |", lines[1])
	assert.Equal(t, "0    2    4      8", lines[2])
}

func TestGantt_Empty(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, nil)
	assert.Contains(t, buf.String(), "(empty)")
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, sampleResponse())

	out := buf.String()
	assert.Contains(t, out, "TURNAROUND")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "Average waiting time: 3.00")
	assert.Contains(t, out, "Throughput: 0.250")
}

func TestSchedule_TitleCarriesQuantum(t *testing.T) {
	var buf bytes.Buffer
	Schedule(&buf, sampleResponse())
	assert.Contains(t, buf.String(), "RoundRobin (quantum 2)")
}
