package schedulers

import (
	"fmt"
	"sort"

	"cpu-scheduler/internal/core"
)

// Result is the complete output of one simulation run.
type Result struct {
	Discipline Discipline
	Timeline   core.Timeline
	Metrics    map[string]core.ProcessMetrics
	Summary    core.Summary
}

// Run builds the timeline of processes under d and computes its metrics. It
// fails before producing anything if processes is empty or invalid.
func Run(processes []core.Process, d Discipline) (*Result, error) {
	if len(processes) == 0 {
		return nil, ErrEmptyInput
	}

	timeline, err := Build(processes, d)
	if err != nil {
		return nil, err
	}

	metrics, summary, err := Compute(processes, timeline)
	if err != nil {
		return nil, err
	}

	return &Result{
		Discipline: d,
		Timeline:   timeline,
		Metrics:    metrics,
		Summary:    summary,
	}, nil
}

// RunAll runs processes under every discipline, in the order of Disciplines.
func RunAll(processes []core.Process, quantum int) ([]*Result, error) {
	disciplines := Disciplines(quantum)
	results := make([]*Result, 0, len(disciplines))
	for _, d := range disciplines {
		result, err := Run(processes, d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Kind(), err)
		}
		results = append(results, result)
	}
	return results, nil
}

// Build produces the timeline of processes under d. An empty process set
// yields an empty timeline.
func Build(processes []core.Process, d Discipline) (core.Timeline, error) {
	if d.kind == KindRoundRobin && d.quantum <= 0 {
		return nil, fmt.Errorf("%w: round robin time quantum must be positive, got %d", ErrInvalidParameter, d.quantum)
	}
	if err := validateProcesses(processes); err != nil {
		return nil, err
	}

	queue := sortByArrival(processes)
	switch d.kind {
	case KindFirstComeFirstServe:
		return scheduleFirstComeFirstServe(queue), nil
	case KindShortestJobFirst:
		return scheduleShortestJobFirst(queue), nil
	case KindPriority:
		return schedulePriority(queue), nil
	case KindRoundRobin:
		return scheduleRoundRobin(queue, d.quantum), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDiscipline, d.kind)
}

func validateProcesses(processes []core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		switch {
		case p.ID == "":
			return fmt.Errorf("%w: process id is empty", ErrInvalidParameter)
		case p.ID == core.IdleID:
			return fmt.Errorf("%w: process id %q is reserved", ErrInvalidParameter, p.ID)
		case p.Arrival < 0:
			return fmt.Errorf("%w: process %q has negative arrival time %d", ErrInvalidParameter, p.ID, p.Arrival)
		case p.Burst <= 0:
			return fmt.Errorf("%w: process %q has non-positive burst time %d", ErrInvalidParameter, p.ID, p.Burst)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidParameter, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// sortByArrival returns a copy of processes ordered by arrival time; equal
// arrivals keep their submission order.
func sortByArrival(processes []core.Process) []core.Process {
	queue := make([]core.Process, len(processes))
	copy(queue, processes)
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].Arrival < queue[j].Arrival
	})
	return queue
}

// gantt accumulates a timeline while tracking the current simulated tick.
type gantt struct {
	timeline core.Timeline
	now      int
}

func newGantt(capacity int) *gantt {
	return &gantt{timeline: make(core.Timeline, 0, capacity)}
}

// idleUntil fills [now, tick) with an idle interval.
func (g *gantt) idleUntil(tick int) {
	if tick <= g.now {
		return
	}
	g.timeline = append(g.timeline, core.Interval{ProcessID: core.IdleID, Start: g.now, End: tick})
	g.now = tick
}

func (g *gantt) run(processID string, ticks int) {
	g.timeline = append(g.timeline, core.Interval{ProcessID: processID, Start: g.now, End: g.now + ticks})
	g.now += ticks
}
