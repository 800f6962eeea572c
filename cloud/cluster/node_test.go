package cluster

import (
	"testing"
)

func Test_NodeUpdate_Helpers(t *testing.T) {
	add := NewAdd(NewCapacityNode("S1", 100))
	if add.UpdateType != NodeAdded || add.Id != "S1" || add.Node.Capacity() != 100 {
		t.Errorf("unexpected add update %s", add.String())
	}

	remove := NewRemove("S1")
	if remove.UpdateType != NodeRemoved || remove.Id != "S1" || remove.Node != nil {
		t.Errorf("unexpected remove update %s", remove.String())
	}
}
