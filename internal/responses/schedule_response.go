package responses

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

type GanttBlock struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []GanttBlock      `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

// NewScheduleResponse flattens a run result. Details follow the submission
// order of processes.
func NewScheduleResponse(processes []core.Process, result *schedulers.Result) ScheduleResponse {
	timeline := make([]GanttBlock, len(result.Timeline))
	for i, interval := range result.Timeline {
		timeline[i] = GanttBlock{ProcessId: interval.ProcessID, Start: interval.Start, End: interval.End}
	}

	details := make([]ProcessResponse, len(processes))
	for i, p := range processes {
		m := result.Metrics[p.ID]
		details[i] = ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			CompletionTime: m.CompletionTime,
			TurnAroundTime: m.TurnaroundTime,
			WaitingTime:    m.WaitingTime,
			ResponseTime:   m.ResponseTime,
		}
	}

	summary := result.Summary
	return ScheduleResponse{
		Algorithm:             result.Discipline.Kind().String(),
		TimeQuantum:           result.Discipline.Quantum(),
		TotalTime:             summary.Makespan,
		IdleTime:              summary.IdleTime,
		AverageWaitingTime:    summary.AverageWaitingTime,
		AverageResponseTime:   summary.AverageResponseTime,
		AverageTurnAroundTime: summary.AverageTurnaroundTime,
		CpuUtilization:        summary.CPUUtilization,
		CpuThroughput:         summary.Throughput,
		Timeline:              timeline,
		Details:               details,
	}
}
