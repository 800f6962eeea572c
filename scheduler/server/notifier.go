package server

//go:generate mockgen -source=notifier.go -package=server -destination=notifier_mock.go

import (
	cc "github.com/twitter/capsched/cloud/cluster"
)

// Notifier is told how each failure handled by the scheduler was resolved.
// It is called after the scheduler lock is released, so it may query the scheduler.
type Notifier interface {
	// The failed worker is gone and the survivors absorbed all of its tasks.
	RecoveryCompleted(workerId cc.NodeId, d Distribution)

	// Recovery did not complete: err is NoWorkersRemaining or RedistributionFailed.
	RecoveryFailed(workerId cc.NodeId, err error)
}

type nopNotifier struct{}

func (nopNotifier) RecoveryCompleted(cc.NodeId, Distribution) {}
func (nopNotifier) RecoveryFailed(cc.NodeId, error)           {}

// NopNotifier ignores every notification.
func NopNotifier() Notifier {
	return nopNotifier{}
}
