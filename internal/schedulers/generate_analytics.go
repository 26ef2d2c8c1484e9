package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Compute derives per-process metrics and the run summary from a timeline.
// A process that never appears in the timeline gets zero-valued metrics.
func Compute(processes []core.Process, timeline core.Timeline) (map[string]core.ProcessMetrics, core.Summary, error) {
	if len(processes) == 0 {
		return nil, core.Summary{}, ErrEmptyInput
	}

	type span struct{ first, last int }
	spans := make(map[string]*span, len(processes))
	for _, interval := range timeline {
		if interval.IsIdle() {
			continue
		}
		s, ok := spans[interval.ProcessID]
		if !ok {
			spans[interval.ProcessID] = &span{first: interval.Start, last: interval.End}
			continue
		}
		s.first = min(s.first, interval.Start)
		s.last = max(s.last, interval.End)
	}

	metrics := make(map[string]core.ProcessMetrics, len(processes))
	details := make([]core.ProcessMetrics, 0, len(processes))
	for _, p := range processes {
		var m core.ProcessMetrics
		if s, ok := spans[p.ID]; ok {
			m = generateProcessDetails(p, s.first, s.last)
		}
		metrics[p.ID] = m
		details = append(details, m)
	}

	return metrics, generateSummary(details, timeline), nil
}

func generateProcessDetails(p core.Process, firstDispatch, completion int) core.ProcessMetrics {
	turnaround := completion - p.Arrival
	return core.ProcessMetrics{
		CompletionTime: completion,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.Burst,
		ResponseTime:   firstDispatch - p.Arrival,
	}
}

func generateSummary(details []core.ProcessMetrics, timeline core.Timeline) core.Summary {
	averageWaitingTime, averageResponseTime, averageTurnaroundTime := util.CalculateAverage(details)

	summary := core.Summary{
		ProcessCount:          len(details),
		Makespan:              timeline.Makespan(),
		IdleTime:              timeline.IdleTime(),
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnaroundTime,
		AverageResponseTime:   averageResponseTime,
	}
	if summary.Makespan > 0 {
		total := float64(summary.Makespan)
		summary.CPUUtilization = 1 - float64(summary.IdleTime)/total
		summary.Throughput = float64(summary.ProcessCount) / total
	}
	return summary
}
