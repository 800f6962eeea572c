package hooks

import (
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
)

// contextHook adds a "file:line" field naming the caller that issued the log entry.
type contextHook struct {
}

func NewContextHook() contextHook {
	return contextHook{}
}

func (hook contextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook contextHook) Fire(entry *logrus.Entry) error {
	if fileLine := callerLine(string(debug.Stack())); fileLine != "" {
		entry.Data["file:line"] = fileLine
	}
	return nil
}

// callerLine walks a debug.Stack() dump and returns the file:line of the first frame
// outside logrus and this hook, trimmed to the path below the module root.
func callerLine(stack string) string {
	lines := strings.Split(stack, "\n")
	// Frames are pairs of lines: the function, then a tab indented file:line.
	for i := 1; i+1 < len(lines); i++ {
		fn := lines[i]
		if strings.HasPrefix(fn, "\t") || strings.HasPrefix(fn, "goroutine ") {
			continue
		}
		if strings.Contains(fn, "sirupsen/logrus") || strings.Contains(fn, "runtime/debug") ||
			strings.Contains(fn, "hooks.contextHook") {
			continue
		}
		file := strings.TrimSpace(lines[i+1])
		if idx := strings.Index(file, " +0x"); idx >= 0 {
			file = file[:idx]
		}
		parts := strings.Split(file, "capsched/")
		return parts[len(parts)-1]
	}
	return ""
}
