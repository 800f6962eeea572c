// Package config describes a pool of workers, a batch of tasks and an optional failure
// as JSON, and applies that description to a CapacityScheduler.
package config

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	cc "github.com/twitter/capsched/cloud/cluster"
	"github.com/twitter/capsched/config/jsonconfig"
	"github.com/twitter/capsched/scheduler/domain"
	"github.com/twitter/capsched/scheduler/server"
)

// JSONConfig is a pool, a batch to place on it and the worker to fail afterwards.
// Fail may be empty, in which case no failure is simulated.
type JSONConfig struct {
	Workers []WorkerJSONConfig
	Tasks   []TaskJSONConfig
	Fail    string
}

type WorkerJSONConfig struct {
	Id       string
	Capacity int
}

type TaskJSONConfig struct {
	Id   string
	Load int
}

func (c *JSONConfig) String() string {
	return fmt.Sprintf("{Workers: %v, Tasks: %v, Fail: %q}", c.Workers, c.Tasks, c.Fail)
}

func (w WorkerJSONConfig) String() string {
	return fmt.Sprintf("%s(cap=%d)", w.Id, w.Capacity)
}

func (t TaskJSONConfig) String() string {
	return fmt.Sprintf("%s:%d", t.Id, t.Load)
}

// Configs holds the built-in configs by name.
var Configs = map[string]string{
	// Six workers of uneven capacity; S3's task moves to S5 when S3 fails.
	"demo.default": `{
	"Workers": [
		{"Id": "S1", "Capacity": 100},
		{"Id": "S2", "Capacity": 80},
		{"Id": "S3", "Capacity": 120},
		{"Id": "S4", "Capacity": 90},
		{"Id": "S5", "Capacity": 110},
		{"Id": "S6", "Capacity": 70}
	],
	"Tasks": [
		{"Id": "S1", "Load": 45},
		{"Id": "S2", "Load": 50},
		{"Id": "S3", "Load": 75},
		{"Id": "S4", "Load": 30},
		{"Id": "S5", "Load": 40},
		{"Id": "S6", "Load": 60}
	],
	"Fail": "S3"
}`,

	// A nearly full pool; W1's tasks cannot all be absorbed so its failure is rolled back.
	"demo.rollback": `{
	"Workers": [
		{"Id": "W1", "Capacity": 50},
		{"Id": "W2", "Capacity": 40},
		{"Id": "W3", "Capacity": 30}
	],
	"Tasks": [
		{"Id": "t1", "Load": 30},
		{"Id": "t2", "Load": 30},
		{"Id": "t3", "Load": 25},
		{"Id": "t4", "Load": 20}
	],
	"Fail": "W1"
}`,
}

// Names returns the built-in config names, sorted.
func Names() []string {
	names := make([]string, 0, len(Configs))
	for name := range Configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Asset serves the built-in configs under config/<name>, for use with jsonconfig.GetConfigText.
func Asset(name string) ([]byte, error) {
	text, ok := Configs[strings.TrimPrefix(name, "config/")]
	if !ok || path.Dir(name) != "config" {
		return nil, fmt.Errorf("no config named %s, choose from %v", path.Base(name), Names())
	}
	return []byte(text), nil
}

// Load resolves configFlag, a built-in name or literal JSON, and parses it.
func Load(configFlag string) (*JSONConfig, error) {
	text, err := jsonconfig.GetConfigText(configFlag, Asset)
	if err != nil {
		return nil, err
	}
	return Parse(text)
}

// Parse decodes and validates a config.
// Registration and load errors are left to the scheduler; Parse only rejects configs it cannot apply.
func Parse(text []byte) (*JSONConfig, error) {
	c := &JSONConfig{}
	if err := jsonconfig.Unmarshal(text, c); err != nil {
		return nil, err
	}
	if len(c.Workers) == 0 {
		return nil, errors.New("config has no workers")
	}
	for i, w := range c.Workers {
		if w.Id == "" {
			return nil, errors.Errorf("worker %d has no id", i)
		}
	}
	for i, t := range c.Tasks {
		if t.Id == "" {
			return nil, errors.Errorf("task %d has no id", i)
		}
	}
	log.Debugf("Parsed config %v", c)
	return c, nil
}

// Nodes returns the configured workers in config order.
func (c *JSONConfig) Nodes() []cc.Node {
	nodes := make([]cc.Node, 0, len(c.Workers))
	for _, w := range c.Workers {
		nodes = append(nodes, cc.NewCapacityNode(w.Id, w.Capacity))
	}
	return nodes
}

// Batch returns the configured tasks in config order.
func (c *JSONConfig) Batch() domain.Batch {
	batch := make(domain.Batch, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		batch = append(batch, domain.Task{Id: t.Id, Load: t.Load})
	}
	return batch
}

// Apply registers every configured worker with s and returns the batch to assign.
func (c *JSONConfig) Apply(s *server.CapacityScheduler) (domain.Batch, error) {
	for _, n := range c.Nodes() {
		if err := s.RegisterWorker(n.Id(), n.Capacity()); err != nil {
			return nil, errors.Wrapf(err, "unable to register worker %s", n.Id())
		}
	}
	return c.Batch(), nil
}
