package core

import "fmt"

// Interval is one block of a Gantt chart: ProcessID ran over [Start, End).
type Interval struct {
	ProcessID string
	Start     int
	End       int
}

func (i Interval) Width() int {
	return i.End - i.Start
}

func (i Interval) IsIdle() bool {
	return i.ProcessID == IdleID
}

// Timeline is the ordered, gap-free sequence of intervals of one run.
type Timeline []Interval

// Makespan returns the end tick of the last interval, 0 for an empty timeline.
func (t Timeline) Makespan() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// IdleTime sums the widths of all idle intervals.
func (t Timeline) IdleTime() int {
	idle := 0
	for _, interval := range t {
		if interval.IsIdle() {
			idle += interval.Width()
		}
	}
	return idle
}

// Verify reports the first way t fails to be a valid schedule of processes:
// intervals must start at 0, be contiguous and non-empty, reference only
// known processes after their arrival, and give each process exactly its burst.
func (t Timeline) Verify(processes []Process) error {
	byID := make(map[string]Process, len(processes))
	for _, p := range processes {
		byID[p.ID] = p
	}

	cursor := 0
	served := make(map[string]int, len(processes))
	for i, interval := range t {
		if interval.Start != cursor {
			return fmt.Errorf("interval %d (%s) starts at %d, expected %d", i, interval.ProcessID, interval.Start, cursor)
		}
		if interval.End <= interval.Start {
			return fmt.Errorf("interval %d (%s) is empty: [%d, %d)", i, interval.ProcessID, interval.Start, interval.End)
		}
		cursor = interval.End
		if interval.IsIdle() {
			continue
		}
		p, ok := byID[interval.ProcessID]
		if !ok {
			return fmt.Errorf("interval %d references unknown process %q", i, interval.ProcessID)
		}
		if interval.Start < p.Arrival {
			return fmt.Errorf("process %q dispatched at %d before its arrival at %d", p.ID, interval.Start, p.Arrival)
		}
		served[interval.ProcessID] += interval.Width()
	}

	for _, p := range processes {
		if served[p.ID] != p.Burst {
			return fmt.Errorf("process %q ran for %d ticks, burst is %d", p.ID, served[p.ID], p.Burst)
		}
	}
	return nil
}
