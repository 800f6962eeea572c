package stats

import (
	"testing"
	"time"
)

func TestPrecisionChange(t *testing.T) {
	stat := DefaultStatsReceiver().(*defaultStatsReceiver)
	if stat.precision != time.Nanosecond {
		t.Fatal("Default precision should be nanos.")
	}

	statp := stat.Precision(time.Millisecond).(*defaultStatsReceiver)
	if stat.precision != time.Nanosecond {
		t.Fatal("Default precision should still nanos.")
	}
	if statp.precision != time.Millisecond {
		t.Fatal("New stat precision should be millis.")
	}
}

func TestScopeChange(t *testing.T) {
	stat := DefaultStatsReceiver().(*defaultStatsReceiver)
	if len(stat.scope) != 0 {
		t.Fatal("Default scope should be empty.")
	}

	statp := stat.Scope("a/b", "c").(*defaultStatsReceiver)
	if len(stat.scope) != 0 {
		t.Fatal("Default scope should still empty.")
	}
	if len(statp.scope) != 2 || statp.scope[0] != "a_SLASH_b" || statp.scope[1] != "c" {
		t.Fatal("Invalid scope value: ", statp.scope)
	}
	if statp.scopedName("d") != "a_SLASH_b/c/d" {
		t.Fatal("Invalid scope name: " + statp.scopedName("d"))
	}
}

func TestSharedInstruments(t *testing.T) {
	stat := DefaultStatsReceiver()
	stat.Counter(SchedAssignedTasksCounter).Inc(2)
	stat.Counter(SchedAssignedTasksCounter).Inc(3)
	if got := stat.Counter(SchedAssignedTasksCounter).Count(); got != 5 {
		t.Fatalf("Expected counter to accumulate across lookups, got %d", got)
	}

	stat.Gauge(ClusterWorkersGauge).Update(4)
	stat.Gauge(ClusterWorkersGauge).Update(3)
	if got := stat.Gauge(ClusterWorkersGauge).Value(); got != 3 {
		t.Fatalf("Expected gauge to hold last value, got %d", got)
	}
}

func TestRender(t *testing.T) {
	stat := DefaultStatsReceiver()
	stat.Counter("counter").Inc(1)
	stat.Gauge("gauge").Update(2)
	stat.GaugeFloat("gaugeFloat").Update(2.5)

	rendered := string(stat.Render(false))
	if rendered != `{"counter":1,"gauge":2,"gaugeFloat":2.5}` {
		t.Fatal("Wrong json render output: ", rendered)
	}
}

func TestMarshalLatency(t *testing.T) {
	defer func() { Time = DefaultStatsTime() }()

	reg := NewFinagleStatsRegistry()
	Time = NewTestTime(time.Unix(0, 0), time.Nanosecond*5)
	reg.GetOrRegister("latency", NewLatency()).(Latency).Time().Stop()
	Time = NewTestTime(time.Unix(0, 0), time.Nanosecond*10)
	reg.GetOrRegister("latency", NewLatency()).(Latency).Time().Stop()

	bytes, err := reg.(MarshalerPretty).MarshalJSONPretty()
	expected :=
		`{
  "latency.avg": 7.5,
  "latency.count": 2,
  "latency.max": 10,
  "latency.min": 5,
  "latency.p50": 7.5,
  "latency.p90": 10,
  "latency.p95": 10,
  "latency.p99": 10,
  "latency.p999": 10,
  "latency.p9999": 10,
  "latency.sum": 15
}`
	if string(bytes) != expected {
		t.Fatal("Wrong json marshal output: ", string(bytes), err)
	}
}

func TestNilStatsReceiver(t *testing.T) {
	stat := NilStatsReceiver()
	stat.Scope("a").Counter("counter").Inc(1)
	stat.Latency("latency").Time().Stop()
	if stat.Counter("counter").Count() != 0 {
		t.Fatal("Expected nil counter to ignore updates")
	}
	if len(stat.Render(true)) != 0 {
		t.Fatal("Expected nil receiver to render nothing")
	}
}
