package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

// ErrInvalidJob reports a job field that fails validation before the
// scheduler is invoked.
var ErrInvalidJob = errors.New("invalid job")

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

// Validate checks every job: ids must be present and unique, arrival times
// non-negative and burst times positive.
func (r *ScheduleRequests) Validate() error {
	seen := make(map[string]int, len(r.Jobs))
	for i, job := range r.Jobs {
		switch {
		case job.ProcessId == "":
			return fmt.Errorf("%w: job %d: process_id is required", ErrInvalidJob, i)
		case job.ProcessId == core.IdleID:
			return fmt.Errorf("%w: job %d: process_id %q is reserved", ErrInvalidJob, i, job.ProcessId)
		case job.ArrivalTime < 0:
			return fmt.Errorf("%w: job %q: arrival_time must be non-negative, got %d", ErrInvalidJob, job.ProcessId, job.ArrivalTime)
		case job.BurstTime <= 0:
			return fmt.Errorf("%w: job %q: burst_time must be positive, got %d", ErrInvalidJob, job.ProcessId, job.BurstTime)
		}
		if prev, dup := seen[job.ProcessId]; dup {
			return fmt.Errorf("%w: job %d: process_id %q already used by job %d", ErrInvalidJob, i, job.ProcessId, prev)
		}
		seen[job.ProcessId] = i
	}
	if r.TimeQuantum < 0 {
		return fmt.Errorf("%w: time_quantum must be positive, got %d", ErrInvalidJob, r.TimeQuantum)
	}
	return nil
}

// Processes converts the jobs, in submission order, to scheduler input.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{
			ID:       job.ProcessId,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: job.Priority,
		}
	}
	return processes
}
