package server

import (
	"bytes"
	"strings"
	"testing"
)

func Test_Distribution_PrintTable(t *testing.T) {
	d := Distribution{
		{Id: "S1", Capacity: 100, CurrentLoad: 75, Utilization: 75, Loads: []int{75}},
		{Id: "S5", Capacity: 110, CurrentLoad: 90, Utilization: 81.81818181818181, Loads: []int{40, 50}},
		{Id: "S6", Capacity: 70, CurrentLoad: 0, Utilization: 0, Loads: []int{}},
	}

	var buf bytes.Buffer
	if err := PrintDistribution(&buf, d, "After failure"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	expected := []string{
		"",
		"After failure",
		tableRule,
		"Worker     Capacity   Load       Utilization  Tasks",
		tableRule,
		"S1         100        75         75.00%      [75]",
		"S5         110        90         81.82%      [40, 50]",
		"S6         70         0          0.00%      []",
		"",
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(expected), len(lines), buf.String())
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("Line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func Test_Distribution_Accessors(t *testing.T) {
	d := Distribution{
		{Id: "A", Capacity: 10, CurrentLoad: 6, Loads: []int{6}},
		{Id: "B", Capacity: 10, CurrentLoad: 3, Loads: []int{1, 2}},
	}
	if d.TotalLoad() != 9 {
		t.Errorf("Expected total load 9, got %d", d.TotalLoad())
	}
	if ws, ok := d.Get("B"); !ok || ws.CurrentLoad != 3 {
		t.Errorf("Expected to find B with load 3, got %v %v", ws, ok)
	}
	if _, ok := d.Get("C"); ok {
		t.Errorf("Expected C to be missing")
	}
	if d.String() != "{A:6/10[6], B:3/10[1 2]}" {
		t.Errorf("Unexpected String(): %s", d.String())
	}
}
