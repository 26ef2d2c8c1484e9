package util

import "cpu-scheduler/internal/core"

// CalculateAverage averages the waiting, response and turnaround times of
// details. All three are 0 when details is empty.
func CalculateAverage(details []core.ProcessMetrics) (averageWaitingTime, averageResponseTime, averageTurnaroundTime float64) {
	if len(details) == 0 {
		return
	}

	var waitingTimeSum, responseTimeSum, turnaroundTimeSum int
	for _, d := range details {
		waitingTimeSum += d.WaitingTime
		responseTimeSum += d.ResponseTime
		turnaroundTimeSum += d.TurnaroundTime
	}

	count := float64(len(details))
	averageWaitingTime = float64(waitingTimeSum) / count
	averageResponseTime = float64(responseTimeSum) / count
	averageTurnaroundTime = float64(turnaroundTimeSum) / count
	return
}
