/*
package server provides CapacityScheduler which places tasks on a pool of capacity-bounded workers.

* Concepts *
Capacity:
  The total load a worker can hold. Fixed at registration and always positive.

Load:
  The positive integer size of a task. A task is placed whole on exactly one worker.

Utilization:
  = CurrentLoad / Capacity * 100

Admissible:
  A worker is admissible for a task when CurrentLoad + Load <= Capacity.

* Logic *
Assign:
  Validate the whole batch first (no partial assignment of an invalid batch).
  Order tasks largest load first, keeping input order for equal loads.
  Place each task on the admissible worker with the lowest utilization, lowest id on ties.
  A task that fits nowhere fails the call; tasks placed before it stay placed.

HandleFailure:
  Remove the failed worker and resubmit its loads, largest first, as failed_task_0..N.
  If no worker remains the failed worker is gone for good and NoWorkersRemaining is returned.
  If the resubmission fails the pool is restored to exactly its state before the call
  and RedistributionFailed is returned, wrapping the task that could not be placed.

All mutating calls hold one exclusive lock for their full duration; queries share a read lock.
*/
package server
