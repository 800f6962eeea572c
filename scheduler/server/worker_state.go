package server

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	cc "github.com/twitter/capsched/cloud/cluster"
)

// workerState is the scheduler's record of one capacity-bounded worker.
// It knows nothing about other workers; the scheduler owns every record by value.
type workerState struct {
	id          cc.NodeId
	capacity    int
	loads       []int // assigned loads in assignment order
	currentLoad int   // always the sum of loads, 0 <= currentLoad <= capacity
}

func newWorkerState(id cc.NodeId, capacity int) workerState {
	return workerState{id: id, capacity: capacity, loads: []int{}}
}

func (w *workerState) String() string {
	return fmt.Sprintf("{id:%s, capacity:%d, currentLoad:%d, utilization:%.2f, loads:%s}",
		w.id, w.capacity, w.currentLoad, w.utilization(), spew.Sdump(w.loads))
}

// canAdmit reports whether load fits in the remaining capacity.
// Callers must only pass positive loads. 0 <= currentLoad <= capacity, so the subtraction cannot overflow.
func (w *workerState) canAdmit(load int) bool {
	return load <= w.capacity-w.currentLoad
}

// admit places load on this worker. A false return is a normal rejection, not an error.
func (w *workerState) admit(load int) bool {
	if !w.canAdmit(load) {
		return false
	}
	w.loads = append(w.loads, load)
	w.currentLoad += load
	return true
}

// utilization is the current load as a percentage of capacity, 0 for a zero capacity.
func (w *workerState) utilization() float64 {
	if w.capacity <= 0 {
		return 0
	}
	return float64(w.currentLoad) * 100 / float64(w.capacity)
}

// clone returns a copy that shares no backing array with w.
func (w *workerState) clone() workerState {
	c := *w
	c.loads = append(make([]int, 0, len(w.loads)), w.loads...)
	return c
}
