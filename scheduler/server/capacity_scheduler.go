package server

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	uuid "github.com/nu7hatch/gouuid"
	log "github.com/sirupsen/logrus"

	cc "github.com/twitter/capsched/cloud/cluster"
	"github.com/twitter/capsched/common/stats"
	"github.com/twitter/capsched/scheduler/domain"
)

// CapacityScheduler owns a pool of workers, places batches of tasks on them
// and redistributes the tasks of a failed worker.
type CapacityScheduler struct {
	mu       sync.RWMutex
	workers  map[cc.NodeId]workerState // keyed by the worker's own id
	stat     stats.StatsReceiver
	notifier Notifier
}

// NewCapacityScheduler creates a scheduler with an empty pool.
// A nil stat or notifier is replaced by a no-op implementation.
func NewCapacityScheduler(stat stats.StatsReceiver, notifier Notifier) *CapacityScheduler {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	if notifier == nil {
		notifier = NopNotifier()
	}
	return &CapacityScheduler{
		workers:  make(map[cc.NodeId]workerState),
		stat:     stat,
		notifier: notifier,
	}
}

// RegisterWorker adds an idle worker with the given capacity to the pool.
func (s *CapacityScheduler) RegisterWorker(id cc.NodeId, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if capacity <= 0 {
		return domain.NewInvalidCapacity(string(id), capacity)
	}
	if _, ok := s.workers[id]; ok {
		return domain.NewDuplicateIdentity(string(id))
	}
	s.workers[id] = newWorkerState(id, capacity)
	s.stat.Counter(stats.SchedRegisteredWorkersCounter).Inc(1)
	s.updateGauges()
	log.Infof("Registered worker %s with capacity %d, %s", id, capacity, s.status())
	return nil
}

// Assign places every task of the batch, largest load first, on the least utilized worker that can hold it.
// Assign is not transactional: when a task fits nowhere the call fails with NoCapacityAvailable
// and the tasks placed before it stay placed.
func (s *CapacityScheduler) Assign(batch domain.Batch) (Distribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.assign(batch); err != nil {
		return nil, err
	}
	return s.distribution(), nil
}

// Snapshot returns a copy of every worker's state, sorted by id.
func (s *CapacityScheduler) Snapshot() Distribution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.distribution()
}

// Utilization returns the named worker's current load as a percentage of its capacity.
func (s *CapacityScheduler) Utilization(id cc.NodeId) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.workers[id]
	if !ok {
		return 0, domain.NewUnknownWorker(string(id))
	}
	return w.utilization(), nil
}

// NumWorkers returns the size of the pool.
func (s *CapacityScheduler) NumWorkers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workers)
}

// HandleFailure removes a failed worker and moves all of its tasks to the surviving workers.
// Either the worker is gone and the survivors hold its tasks, or the pool is left exactly as it was
// and RedistributionFailed is returned. NoWorkersRemaining is the exception: with nobody left to
// absorb the tasks the failed worker stays removed.
func (s *CapacityScheduler) HandleFailure(id cc.NodeId) (Distribution, error) {
	d, attempted, err := s.handleFailure(id)
	if !attempted {
		return nil, err
	}
	if err != nil {
		s.notifier.RecoveryFailed(id, err)
		return nil, err
	}
	s.notifier.RecoveryCompleted(id, d)
	return d, nil
}

// handleFailure does the work of HandleFailure under the lock.
// attempted is false when id was never registered and nothing was done.
func (s *CapacityScheduler) handleFailure(id cc.NodeId) (d Distribution, attempted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	failed, ok := s.workers[id]
	if !ok {
		return nil, false, domain.NewUnknownWorker(string(id))
	}
	s.stat.Counter(stats.SchedFailuresHandledCounter).Inc(1)

	survivors := s.cloneWorkers()
	delete(survivors, id)
	delete(s.workers, id)
	log.WithFields(
		log.Fields{
			"worker":   id,
			"capacity": failed.capacity,
			"numTasks": len(failed.loads),
			"load":     failed.currentLoad,
		}).Info("Removed failed worker")

	if len(s.workers) == 0 {
		s.updateGauges()
		log.Errorf("Worker %s failed with no remaining workers, %d tasks lost", id, len(failed.loads))
		return nil, true, domain.NewNoWorkersRemaining(string(id))
	}

	batch := domain.RecoveryBatch(failed.loads)
	if err := s.assign(batch); err != nil {
		// Undo any placements the partial assign made, then bring the failed worker back
		// with its original tasks in their original order.
		s.workers = survivors
		restored := newWorkerState(id, failed.capacity)
		for _, load := range failed.loads {
			restored.admit(load)
		}
		s.workers[id] = restored
		s.updateGauges()

		s.stat.Counter(stats.SchedRecoveriesRolledBackCounter).Inc(1)
		log.WithFields(
			log.Fields{
				"worker":   id,
				"numTasks": len(batch),
				"err":      err,
			}).Error("Unable to redistribute tasks of failed worker, restored worker")
		return nil, true, domain.NewRedistributionFailed(string(id), err)
	}

	s.stat.Counter(stats.SchedRecoveriesCompletedCounter).Inc(1)
	s.stat.Counter(stats.SchedRedistributedTasksCounter).Inc(int64(len(batch)))
	log.Infof("Redistributed %d tasks of failed worker %s, %s", len(batch), id, s.status())
	return s.distribution(), true, nil
}

// assign is Assign without the lock. Callers must hold s.mu for writing.
func (s *CapacityScheduler) assign(batch domain.Batch) error {
	defer s.stat.Precision(time.Millisecond).Latency(stats.SchedAssignLatency_ms).Time().Stop()

	if len(s.workers) == 0 {
		return domain.NewNoWorkersRegistered()
	}
	if err := batch.Validate(); err != nil {
		return err
	}

	batchId := newBatchId()
	ordered := batch.SortedByLoad()
	log.WithFields(
		log.Fields{
			"batchID":    batchId,
			"numTasks":   len(ordered),
			"totalLoad":  batch.TotalLoad(),
			"numWorkers": len(s.workers),
		}).Info("Assigning batch")

	defer s.updateGauges()
	for i, task := range ordered {
		id, err := s.selectTarget(task)
		if err != nil {
			s.stat.Counter(stats.SchedRejectedTasksCounter).Inc(1)
			log.WithFields(
				log.Fields{
					"batchID":  batchId,
					"taskID":   task.Id,
					"load":     task.Load,
					"assigned": i,
				}).Warn("Unable to assign, no worker can hold task")
			return err
		}

		w := s.workers[id]
		if !w.admit(task.Load) {
			// selectTarget only returns admissible workers.
			return domain.NewNoCapacityAvailable(task)
		}
		s.workers[id] = w
		s.stat.Counter(stats.SchedAssignedTasksCounter).Inc(1)

		log.WithFields(
			log.Fields{
				"batchID":     batchId,
				"taskID":      task.Id,
				"load":        task.Load,
				"worker":      id,
				"utilization": fmt.Sprintf("%.2f", w.utilization()),
			}).Info("Assigned task")
		log.Debugf("Worker after assignment: %s", &w)
	}
	return nil
}

// selectTarget returns the admissible worker with the lowest utilization.
// Ties go to the lowest id so placement is reproducible.
func (s *CapacityScheduler) selectTarget(task domain.Task) (cc.NodeId, error) {
	var best *workerState
	for _, id := range s.sortedIds() {
		w := s.workers[id]
		if !w.canAdmit(task.Load) {
			continue
		}
		if best == nil || w.utilization() < best.utilization() {
			best = &w
		}
	}
	if best == nil {
		return "", domain.NewNoCapacityAvailable(task)
	}
	return best.id, nil
}

func (s *CapacityScheduler) sortedIds() []cc.NodeId {
	ids := make([]cc.NodeId, 0, len(s.workers))
	for id := range s.workers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *CapacityScheduler) cloneWorkers() map[cc.NodeId]workerState {
	clone := make(map[cc.NodeId]workerState, len(s.workers))
	for id, w := range s.workers {
		clone[id] = w.clone()
	}
	return clone
}

func (s *CapacityScheduler) distribution() Distribution {
	d := make(Distribution, 0, len(s.workers))
	for _, id := range s.sortedIds() {
		w := s.workers[id]
		d = append(d, WorkerStatus{
			Id:          w.id,
			Capacity:    w.capacity,
			CurrentLoad: w.currentLoad,
			Utilization: w.utilization(),
			Loads:       append(make([]int, 0, len(w.loads)), w.loads...),
		})
	}
	return d
}

// totals sums load and capacity over the pool, saturating at math.MaxInt.
func (s *CapacityScheduler) totals() (load, capacity int) {
	for _, w := range s.workers {
		load = saturatingAdd(load, w.currentLoad)
		capacity = saturatingAdd(capacity, w.capacity)
	}
	return load, capacity
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func (s *CapacityScheduler) updateGauges() {
	load, capacity := s.totals()
	s.stat.Gauge(stats.ClusterWorkersGauge).Update(int64(len(s.workers)))
	s.stat.Gauge(stats.ClusterLoadGauge).Update(int64(load))
	s.stat.Gauge(stats.ClusterCapacityGauge).Update(int64(capacity))
	utilization := 0.0
	if capacity > 0 {
		utilization = float64(load) * 100 / float64(capacity)
	}
	s.stat.GaugeFloat(stats.ClusterUtilizationGaugeFloat).Update(utilization)
}

func (s *CapacityScheduler) status() string {
	load, capacity := s.totals()
	return fmt.Sprintf("now have %d workers (load %d of capacity %d)", len(s.workers), load, capacity)
}

func newBatchId() string {
	id, err := uuid.NewV4()
	if err != nil {
		log.Errorf("Unable to generate batch id: %v", err)
		return ""
	}
	return id.String()
}
