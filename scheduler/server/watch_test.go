package server

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	cc "github.com/twitter/capsched/cloud/cluster"
	"github.com/twitter/capsched/common/stats"
	"github.com/twitter/capsched/scheduler/domain"
)

func Test_Watch_AppliesUpdatesUntilClosed(t *testing.T) {
	stat := stats.DefaultStatsReceiver()
	s := NewCapacityScheduler(stat, nil)

	updatesCh := make(chan []cc.NodeUpdate, 3)
	updatesCh <- []cc.NodeUpdate{
		cc.NewAdd(cc.NewCapacityNode("A", 10)),
		cc.NewAdd(cc.NewCapacityNode("B", 10)),
		cc.NewAdd(cc.NewCapacityNode("B", 20)),
		{UpdateType: cc.NodeAdded, Id: "nil"},
	}
	updatesCh <- []cc.NodeUpdate{cc.NewRemove("unknown")}
	close(updatesCh)

	// Returns once the channel is drained and closed.
	s.Watch(context.Background(), updatesCh)

	d := s.Snapshot()
	assert.Equal(t, 2, len(d))
	ws, _ := d.Get("B")
	assert.Equal(t, 10, ws.Capacity, "duplicate add must not replace B")
	assert.Equal(t, int64(5), stat.Counter(stats.ClusterUpdatesCounter).Count())
}

func Test_Watch_RemoveRedistributes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	notifier := NewMockNotifier(mockCtrl)
	s := NewCapacityScheduler(nil, notifier)
	s.RegisterWorker("A", 10)
	s.RegisterWorker("B", 10)
	if _, err := s.Assign(domain.Batch{{Id: "t1", Load: 6}, {Id: "t2", Load: 3}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	notifier.EXPECT().RecoveryCompleted(cc.NodeId("A"), gomock.Any())

	updatesCh := make(chan []cc.NodeUpdate, 1)
	updatesCh <- []cc.NodeUpdate{cc.NewRemove("A")}
	close(updatesCh)
	s.Watch(context.Background(), updatesCh)

	assertLoads(t, s.Snapshot(), "B", 3, 6)
}

func Test_Watch_StopsOnCancel(t *testing.T) {
	s := NewCapacityScheduler(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	updatesCh := make(chan []cc.NodeUpdate)

	done := make(chan struct{})
	go func() {
		s.Watch(ctx, updatesCh)
		close(done)
	}()

	updatesCh <- []cc.NodeUpdate{cc.NewAdd(cc.NewCapacityNode("A", 10))}
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Expected Watch to return after cancel")
	}
	if s.NumWorkers() != 1 {
		t.Errorf("Expected update sent before cancel to be applied, got %v", s.Snapshot())
	}
}
