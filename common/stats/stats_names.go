package stats

/*
This file defines all the metrics being collected. As new metrics are added please follow this pattern.
*/

const (
	/************************* Scheduler metrics **************************/
	/*
		the number of workers accepted by RegisterWorker
	*/
	SchedRegisteredWorkersCounter = "schedRegisteredWorkersCounter"

	/*
		the number of tasks admitted onto a worker by Assign
	*/
	SchedAssignedTasksCounter = "schedAssignedTasksCounter"

	/*
		the number of tasks Assign could not place on any worker
	*/
	SchedRejectedTasksCounter = "schedRejectedTasksCounter"

	/*
		amount of time it takes to order and place one batch
	*/
	SchedAssignLatency_ms = "schedAssignLatency_ms"

	/*
		the number of HandleFailure calls naming a registered worker
	*/
	SchedFailuresHandledCounter = "schedFailuresHandledCounter"

	/*
		the number of failures whose tasks were fully absorbed by the surviving workers
	*/
	SchedRecoveriesCompletedCounter = "schedRecoveriesCompletedCounter"

	/*
		the number of failures that were rolled back because redistribution failed
	*/
	SchedRecoveriesRolledBackCounter = "schedRecoveriesRolledBackCounter"

	/*
		the number of tasks moved off a failed worker by a completed recovery
	*/
	SchedRedistributedTasksCounter = "schedRedistributedTasksCounter"

	/************************* Cluster metrics **************************/
	/*
		the number of workers currently in the pool
	*/
	ClusterWorkersGauge = "clusterWorkersGauge"

	/*
		the sum of current loads across the pool
	*/
	ClusterLoadGauge = "clusterLoadGauge"

	/*
		the sum of capacities across the pool
	*/
	ClusterCapacityGauge = "clusterCapacityGauge"

	/*
		pool wide load as a percentage of pool wide capacity
	*/
	ClusterUtilizationGaugeFloat = "clusterUtilizationGaugeFloat"

	/*
		the number of cluster updates consumed by the update loop
	*/
	ClusterUpdatesCounter = "clusterUpdatesCounter"
)
