package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// Title writes title framed by dashed rules.
func Title(w io.Writer, title string) {
	rule := strings.Repeat("-", len(title)*2)
	_, _ = fmt.Fprintln(w, rule)
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, rule)
}

// Gantt writes the timeline as a row of labelled blocks followed by the tick
// at which each block starts and the final end tick.
func Gantt(w io.Writer, timeline []responses.GanttBlock) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var bars, ticks strings.Builder
	bars.WriteString("|")
	for _, block := range timeline {
		cell := blockWidth(block)
		bars.WriteString(center(block.ProcessId, cell))
		bars.WriteString("|")

		start := fmt.Sprint(block.Start)
		ticks.WriteString(start)
		ticks.WriteString(strings.Repeat(" ", max(cell+1-len(start), 1)))
	}
	ticks.WriteString(fmt.Sprint(timeline[len(timeline)-1].End))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

// Table writes per-process metrics with run averages in the footer.
func Table(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	for _, d := range response.Details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Makespan %d", response.TotalTime),
		fmt.Sprintf("Avg %.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Avg %.2f", response.AverageWaitingTime),
		fmt.Sprintf("Avg %.2f", response.AverageResponseTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "Average waiting time: %.2f | Average turnaround time: %.2f | Throughput: %.3f | CPU utilization: %.2f%%\n\n",
		response.AverageWaitingTime, response.AverageTurnAroundTime, response.CpuThroughput, response.CpuUtilization*100)
}

// Schedule writes the title, Gantt chart and table of one run.
func Schedule(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	Title(w, title)
	Gantt(w, response.Timeline)
	Table(w, response)
}

// blockWidth scales a block with its duration so long bursts read longer.
func blockWidth(block responses.GanttBlock) int {
	return max(len(block.ProcessId)+2, min(block.End-block.Start, 12)+2)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
