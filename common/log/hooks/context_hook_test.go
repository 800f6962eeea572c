package hooks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func Test_ContextHook_AddsFileLine(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	logger.Formatter = &logrus.JSONFormatter{}
	logger.AddHook(NewContextHook())

	logger.Info("hello")

	if !strings.Contains(buf.String(), `"file:line":"`) {
		t.Fatalf("expected file:line field in %s", buf.String())
	}
	if !strings.Contains(buf.String(), "context_hook_test.go:") {
		t.Errorf("expected caller to be this test file, got %s", buf.String())
	}
}

func Test_ContextHook_CallerLine(t *testing.T) {
	stack := strings.Join([]string{
		"goroutine 1 [running]:",
		"runtime/debug.Stack(0x0)",
		"\t/usr/lib/go/src/runtime/debug/stack.go:24 +0x9d",
		"github.com/sirupsen/logrus.(*Entry).log(0xc0000a)",
		"\t/go/pkg/mod/github.com/sirupsen/logrus@v1.4.2/entry.go:226 +0x1f",
		"github.com/twitter/capsched/scheduler/server.(*CapacityScheduler).Assign(0xc0001)",
		"\t/src/github.com/twitter/capsched/scheduler/server/capacity_scheduler.go:120 +0x2a",
	}, "\n")

	if got := callerLine(stack); got != "scheduler/server/capacity_scheduler.go:120" {
		t.Errorf("unexpected caller line %q", got)
	}
	if got := callerLine("goroutine 1 [running]:"); got != "" {
		t.Errorf("expected empty caller line, got %q", got)
	}
}
