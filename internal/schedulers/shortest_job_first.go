package schedulers

import "cpu-scheduler/internal/core"

func scheduleShortestJobFirst(queue []core.Process) core.Timeline {
	return scheduleNonPreemptive(queue, func(a, b core.Process) bool {
		if a.Burst != b.Burst {
			return a.Burst < b.Burst
		}
		return a.Arrival < b.Arrival
	})
}

// scheduleNonPreemptive repeatedly dispatches, to completion, the arrived
// process that comes first under before. queue must be sorted by arrival;
// processes equal under before are dispatched in queue order.
func scheduleNonPreemptive(queue []core.Process, before func(a, b core.Process) bool) core.Timeline {
	g := newGantt(len(queue))
	pending := make([]core.Process, len(queue))
	copy(pending, queue)

	for len(pending) > 0 {
		g.idleUntil(pending[0].Arrival)

		// pending stays sorted by arrival, so the ready set is a prefix
		next := 0
		for i := 1; i < len(pending) && pending[i].Arrival <= g.now; i++ {
			if before(pending[i], pending[next]) {
				next = i
			}
		}

		p := pending[next]
		pending = append(pending[:next], pending[next+1:]...)
		g.run(p.ID, p.Burst)
	}
	return g.timeline
}
