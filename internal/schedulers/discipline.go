package schedulers

import (
	"fmt"
	"strings"
)

type Kind int

const (
	kindUnknown Kind = iota
	KindFirstComeFirstServe
	KindShortestJobFirst
	KindPriority
	KindRoundRobin
)

func (k Kind) String() string {
	switch k {
	case KindFirstComeFirstServe:
		return "FCFS"
	case KindShortestJobFirst:
		return "SJF"
	case KindPriority:
		return "Priority"
	case KindRoundRobin:
		return "RoundRobin"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Discipline selects the dispatch policy of a run. Only Round Robin carries a
// quantum. Build it with FCFS, SJF, Priority, RoundRobin or ParseDiscipline;
// the zero value is rejected with ErrUnknownDiscipline.
type Discipline struct {
	kind    Kind
	quantum int
}

func FCFS() Discipline {
	return Discipline{kind: KindFirstComeFirstServe}
}

func SJF() Discipline {
	return Discipline{kind: KindShortestJobFirst}
}

func Priority() Discipline {
	return Discipline{kind: KindPriority}
}

// RoundRobin returns a Round Robin discipline. The quantum is checked by
// Build, not here.
func RoundRobin(quantum int) Discipline {
	return Discipline{kind: KindRoundRobin, quantum: quantum}
}

func (d Discipline) Kind() Kind {
	return d.kind
}

// Quantum returns the time slice of a Round Robin discipline and 0 for the
// others.
func (d Discipline) Quantum() int {
	return d.quantum
}

func (d Discipline) String() string {
	if d.kind == KindRoundRobin {
		return fmt.Sprintf("%s(q=%d)", d.kind, d.quantum)
	}
	return d.kind.String()
}

// ParseDiscipline maps an external discipline name to its Discipline. Names
// are matched case-insensitively; "rr" is accepted for RoundRobin. The
// quantum is ignored for every discipline but Round Robin.
func ParseDiscipline(name string, quantum int) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return FCFS(), nil
	case "sjf":
		return SJF(), nil
	case "priority":
		return Priority(), nil
	case "roundrobin", "rr":
		return RoundRobin(quantum), nil
	}
	return Discipline{}, fmt.Errorf("%w: %q", ErrUnknownDiscipline, name)
}

// Disciplines lists every supported discipline in canonical order, with
// Round Robin using quantum.
func Disciplines(quantum int) []Discipline {
	return []Discipline{FCFS(), SJF(), Priority(), RoundRobin(quantum)}
}
