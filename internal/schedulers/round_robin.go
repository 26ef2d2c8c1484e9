package schedulers

import "cpu-scheduler/internal/core"

// scheduleRoundRobin grants each ready process at most quantum ticks at a
// time. Processes arriving while a slice runs, or exactly when it ends, join
// the ready queue ahead of the process that just used the slice.
func scheduleRoundRobin(queue []core.Process, quantum int) core.Timeline {
	g := newGantt(len(queue))

	remaining := make(map[string]int, len(queue))
	for _, p := range queue {
		remaining[p.ID] = p.Burst
	}

	ready := make([]*core.Process, 0, len(queue))
	admitted := 0
	admit := func() {
		for admitted < len(queue) && queue[admitted].Arrival <= g.now {
			ready = append(ready, &queue[admitted])
			admitted++
		}
	}

	admit()
	for len(ready) > 0 || admitted < len(queue) {
		if len(ready) == 0 {
			g.idleUntil(queue[admitted].Arrival)
			admit()
			continue
		}

		p := ready[0]
		ready = ready[1:]

		slice := min(quantum, remaining[p.ID])
		g.run(p.ID, slice)
		remaining[p.ID] -= slice

		admit()
		if remaining[p.ID] > 0 {
			ready = append(ready, p)
		}
	}
	return g.timeline
}
