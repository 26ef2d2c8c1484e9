package schedulers

import "cpu-scheduler/internal/core"

// schedulePriority is non-preemptive; lower priority numbers run first.
func schedulePriority(queue []core.Process) core.Timeline {
	return scheduleNonPreemptive(queue, func(a, b core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Arrival < b.Arrival
	})
}
