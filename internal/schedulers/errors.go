package schedulers

import "errors"

var (
	// ErrInvalidParameter reports a process or discipline parameter the
	// simulator cannot run with, such as a non-positive quantum or burst.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnknownDiscipline reports a discipline name or value that is not
	// one of FCFS, SJF, Priority or RoundRobin.
	ErrUnknownDiscipline = errors.New("unknown discipline")
	// ErrEmptyInput is returned by Compute and Run for an empty process set.
	// Build accepts an empty set and returns an empty Timeline.
	ErrEmptyInput = errors.New("no processes to schedule")
)
