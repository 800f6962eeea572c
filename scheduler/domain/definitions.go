// Package domain provides definitions for the tasks and batches the capacity scheduler places
// and the errors it reports.
package domain

import (
	"fmt"
	"math"
	"sort"
)

// FailedTaskPrefix prefixes the synthetic task ids created when a failed worker's loads are resubmitted.
const FailedTaskPrefix = "failed_task_"

// Task is one indivisible unit of work. Only Load is retained once the task is placed.
type Task struct {
	Id   string
	Load int
}

func (t Task) String() string {
	return fmt.Sprintf("%s:%d", t.Id, t.Load)
}

// Batch is the set of tasks submitted together to one Assign call, in input order.
type Batch []Task

// BatchFromMap builds a Batch from a task id to load mapping.
// Map iteration order is random, so tasks are ordered by id to keep placement reproducible.
func BatchFromMap(tasks map[string]int) Batch {
	ids := make([]string, 0, len(tasks))
	for id := range tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	batch := make(Batch, 0, len(ids))
	for _, id := range ids {
		batch = append(batch, Task{Id: id, Load: tasks[id]})
	}
	return batch
}

// Validate checks every task in the batch before anything is placed.
// Returns InvalidTaskLoad for the first non-positive load, DuplicateTask for a repeated id.
func (b Batch) Validate() error {
	seen := make(map[string]bool, len(b))
	for _, t := range b {
		if t.Load <= 0 {
			return NewInvalidTaskLoad(t)
		}
		if seen[t.Id] {
			return NewDuplicateTask(t)
		}
		seen[t.Id] = true
	}
	return nil
}

// SortedByLoad returns a copy of the batch ordered largest load first.
// Equal loads keep their input order.
func (b Batch) SortedByLoad() Batch {
	sorted := make(Batch, len(b))
	copy(sorted, b)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Load > sorted[j].Load
	})
	return sorted
}

// TotalLoad sums the loads of every task in the batch, saturating at math.MaxInt.
func (b Batch) TotalLoad() int {
	total := 0
	for _, t := range b {
		if t.Load > 0 && total > math.MaxInt-t.Load {
			return math.MaxInt
		}
		total += t.Load
	}
	return total
}

// FailedTaskId names the i'th task recovered from a failed worker.
func FailedTaskId(i int) string {
	return fmt.Sprintf("%s%d", FailedTaskPrefix, i)
}

// RecoveryBatch turns a failed worker's loads into a batch with synthetic ids,
// largest load first so ids follow the placement order.
func RecoveryBatch(loads []int) Batch {
	sorted := make([]int, len(loads))
	copy(sorted, loads)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	batch := make(Batch, len(sorted))
	for i, load := range sorted {
		batch[i] = Task{Id: FailedTaskId(i), Load: load}
	}
	return batch
}
