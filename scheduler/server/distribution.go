package server

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	cc "github.com/twitter/capsched/cloud/cluster"
)

// WorkerStatus is a point in time copy of one worker's state.
type WorkerStatus struct {
	Id          cc.NodeId
	Capacity    int
	CurrentLoad int
	Utilization float64
	Loads       []int
}

// Distribution lists every registered worker, sorted by id.
type Distribution []WorkerStatus

// Get returns the status of the named worker.
func (d Distribution) Get(id cc.NodeId) (WorkerStatus, bool) {
	for _, ws := range d {
		if ws.Id == id {
			return ws, true
		}
	}
	return WorkerStatus{}, false
}

// TotalLoad sums the current load of every worker.
func (d Distribution) TotalLoad() int {
	total := 0
	for _, ws := range d {
		total = saturatingAdd(total, ws.CurrentLoad)
	}
	return total
}

func (d Distribution) String() string {
	parts := make([]string, 0, len(d))
	for _, ws := range d {
		parts = append(parts, fmt.Sprintf("%s:%d/%d%v", ws.Id, ws.CurrentLoad, ws.Capacity, ws.Loads))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

const tableRule = "--------------------------------------------------------------------------------"

// formatLoads renders loads as a comma separated list, e.g. [40, 50].
func formatLoads(loads []int) string {
	parts := make([]string, 0, len(loads))
	for _, l := range loads {
		parts = append(parts, strconv.Itoa(l))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PrintDistribution writes d as a table under the given title.
func PrintDistribution(w io.Writer, d Distribution, title string) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "\n%s\n", title)
	fmt.Fprintln(&buf, tableRule)
	fmt.Fprintf(&buf, "%-10s %-10s %-10s %-12s %s\n", "Worker", "Capacity", "Load", "Utilization", "Tasks")
	fmt.Fprintln(&buf, tableRule)
	for _, ws := range d {
		fmt.Fprintf(&buf, "%-10s %-10d %-10d %.2f%%      %s\n",
			ws.Id, ws.Capacity, ws.CurrentLoad, ws.Utilization, formatLoads(ws.Loads))
	}
	_, err := w.Write(buf.Bytes())
	return err
}
