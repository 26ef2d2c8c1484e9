package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var headerColumns = []string{"id", "burst", "arrival", "priority"}

// LoadCSV reads jobs from rows of "id,burst,arrival[,priority]". The first
// record may be a header naming exactly those columns. Lines starting with
// '#' are comments.
func LoadCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	jobs := make([]Job, 0)
	for record := 1; ; record++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d: expected 3 or 4 columns, got %d", ErrInvalidJob, line, len(row))
		}
		if record == 1 && isHeader(row) {
			continue
		}

		job := Job{ProcessId: strings.TrimSpace(row[0])}
		if job.BurstTime, err = parseColumn(row, 1, "burst", line); err != nil {
			return nil, err
		}
		if job.ArrivalTime, err = parseColumn(row, 2, "arrival", line); err != nil {
			return nil, err
		}
		if len(row) == 4 {
			if job.Priority, err = parseColumn(row, 3, "priority", line); err != nil {
				return nil, err
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	for i, column := range row {
		if !strings.EqualFold(strings.TrimSpace(column), headerColumns[i]) {
			return false
		}
	}
	return true
}

func parseColumn(row []string, i int, name string, line int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(row[i]))
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %s %q is not an integer", ErrInvalidJob, line, name, row[i])
	}
	return v, nil
}
