package core

// IdleID marks a Timeline interval during which the CPU runs nothing.
const IdleID = "IDLE"

// Process is one unit of work submitted to a simulation run. Lower
// Priority values win.
type Process struct {
	ID       string
	Arrival  int
	Burst    int
	Priority int
}

// ProcessMetrics holds the per-process results of a run.
type ProcessMetrics struct {
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// Summary aggregates the metrics of all processes of a run.
type Summary struct {
	ProcessCount          int
	Makespan              int
	IdleTime              int
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
	CPUUtilization        float64
	Throughput            float64
}
