package cluster

import (
	"fmt"
)

// NodeId identifies a worker in the pool.
type NodeId string

// Node is a capacity-bounded worker as announced by cluster membership.
type Node interface {
	// A unique node identifier, like 'S1' or 'host:port'
	Id() NodeId

	// The total load the node can hold.
	Capacity() int
}

type capacityNode struct {
	id       NodeId
	capacity int
}

func (n *capacityNode) String() string {
	return fmt.Sprintf("%s(cap=%d)", n.id, n.capacity)
}

func NewCapacityNode(id string, capacity int) Node {
	return &capacityNode{id: NodeId(id), capacity: capacity}
}

func (n *capacityNode) Id() NodeId {
	return n.id
}

func (n *capacityNode) Capacity() int {
	return n.capacity
}

type NodeUpdateType int

const (
	NodeAdded NodeUpdateType = iota
	NodeRemoved
)

func (t NodeUpdateType) String() string {
	switch t {
	case NodeAdded:
		return "NodeAdded"
	case NodeRemoved:
		return "NodeRemoved"
	default:
		return fmt.Sprintf("NodeUpdateType(%d)", int(t))
	}
}

var _ Node = (*capacityNode)(nil)
