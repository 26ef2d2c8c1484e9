package schedulers

import "cpu-scheduler/internal/core"

// scheduleFirstComeFirstServe runs each process to completion in arrival order.
func scheduleFirstComeFirstServe(queue []core.Process) core.Timeline {
	g := newGantt(len(queue))
	for _, p := range queue {
		g.idleUntil(p.Arrival)
		g.run(p.ID, p.Burst)
	}
	return g.timeline
}
