package server

import (
	"context"

	log "github.com/sirupsen/logrus"

	cc "github.com/twitter/capsched/cloud/cluster"
	"github.com/twitter/capsched/common/stats"
)

// Watch applies cluster membership updates to the pool until ctx is done or updatesCh is closed.
// Added nodes are registered, removed nodes are handled as failures. Errors are logged and
// do not stop the loop.
func (s *CapacityScheduler) Watch(ctx context.Context, updatesCh <-chan []cc.NodeUpdate) {
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopped watching cluster updates")
			return
		case updates, ok := <-updatesCh:
			if !ok {
				log.Info("Cluster update channel closed")
				return
			}
			s.applyUpdates(updates)
		}
	}
}

func (s *CapacityScheduler) applyUpdates(updates []cc.NodeUpdate) {
	for _, update := range updates {
		s.stat.Counter(stats.ClusterUpdatesCounter).Inc(1)
		switch update.UpdateType {
		case cc.NodeAdded:
			if update.Node == nil {
				log.Errorf("Ignoring add for %s with no node", update.Id)
				continue
			}
			if err := s.RegisterWorker(update.Id, update.Node.Capacity()); err != nil {
				log.WithFields(
					log.Fields{
						"worker": update.Id,
						"err":    err,
					}).Error("Unable to register added node")
			}
		case cc.NodeRemoved:
			if _, err := s.HandleFailure(update.Id); err != nil {
				log.WithFields(
					log.Fields{
						"worker": update.Id,
						"err":    err,
					}).Error("Unable to recover removed node")
			}
		default:
			log.Errorf("Unexpected update type %v for %s", update.UpdateType, update.Id)
		}
	}
}
