package server

import (
	cc "github.com/twitter/capsched/cloud/cluster"
	"github.com/twitter/capsched/scheduler/domain"
)

// Scheduler is the programmatic surface of the capacity scheduler.
type Scheduler interface {
	RegisterWorker(id cc.NodeId, capacity int) error

	Assign(batch domain.Batch) (Distribution, error)

	HandleFailure(id cc.NodeId) (Distribution, error)

	Snapshot() Distribution

	Utilization(id cc.NodeId) (float64, error)
}

var _ Scheduler = (*CapacityScheduler)(nil)
