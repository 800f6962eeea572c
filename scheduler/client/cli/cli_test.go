package cli

import (
	"bytes"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	exiterrors "github.com/twitter/capsched/common/errors"
	"github.com/twitter/capsched/scheduler/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	cl, err := NewSimpleCLIClient()
	if err != nil {
		t.Fatalf("Unable to create client: %v", err)
	}
	c := cl.(*SchedCLIClient)
	var out bytes.Buffer
	c.RootCmd.SetOutput(&out)
	c.RootCmd.SetArgs(args)
	err = c.Exec()
	return out.String(), err
}

func Test_CLI_DemoDefault(t *testing.T) {
	out, err := execute(t, "demo", "--log_level", "error")
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, out)
	}
	for _, expected := range []string{
		"Initial Distribution",
		"S3         120        50         41.67%      [50]",
		"Simulating failure of worker S3...",
		"Distribution After S3 Failure",
		"S5         110        90         81.82%      [40, 50]",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, out)
		}
	}
	after := out[strings.Index(out, "Distribution After S3 Failure"):]
	if strings.Contains(after, "\nS3 ") {
		t.Errorf("Expected S3 to be gone after failure, got:\n%s", after)
	}
}

func Test_CLI_DemoRollback(t *testing.T) {
	out, err := execute(t, "demo", "--config", "demo.rollback", "--log_level", "error")
	if !domain.IsKind(err, domain.RedistributionFailed) {
		t.Fatalf("Expected RedistributionFailed, got %v\n%s", err, out)
	}
	ece, ok := err.(*exiterrors.ExitCodeError)
	if !ok {
		t.Fatalf("Expected ExitCodeError, got %T", err)
	}
	assert.Equal(t, exiterrors.RedistributionFailedExitCode, ece.GetExitCode())
	assert.Contains(t, out, "Distribution After Failed Recovery")
	assert.Contains(t, out, "W1         50         50         100.00%      [30, 20]")
}

func Test_CLI_DemoFailOverride(t *testing.T) {
	out, err := execute(t, "demo", "--fail", "S5", "--print_stats", "--log_level", "error")
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, out)
	}
	assert.Contains(t, out, "Distribution After S5 Failure")
	assert.Contains(t, out, "schedRecoveriesCompletedCounter")
}

func Test_CLI_DemoLiteralConfig(t *testing.T) {
	out, err := execute(t, "demo", "--log_level", "error", "--config",
		`{"Workers": [{"Id": "A", "Capacity": 5}], "Tasks": [{"Id": "t1", "Load": 6}]}`)
	if !domain.IsKind(pkgerrors.Cause(err), domain.NoCapacityAvailable) {
		t.Fatalf("Expected NoCapacityAvailable, got %v\n%s", err, out)
	}
	assert.Equal(t, exiterrors.NoCapacityExitCode, err.(*exiterrors.ExitCodeError).GetExitCode())
}

func Test_CLI_DemoUnknownWorker(t *testing.T) {
	_, err := execute(t, "demo", "--fail", "S9", "--log_level", "error")
	if !domain.IsKind(err, domain.UnknownWorker) {
		t.Errorf("Expected UnknownWorker, got %v", err)
	}
}

func Test_CLI_BadFlags(t *testing.T) {
	_, err := execute(t, "demo", "--config", "demo.missing", "--log_level", "error")
	if err == nil {
		t.Fatalf("Expected error for missing config")
	}
	assert.Equal(t, exiterrors.UsageExitCode, err.(*exiterrors.ExitCodeError).GetExitCode())

	if _, err := execute(t, "demo", "--log_level", "loud"); err == nil {
		t.Errorf("Expected error for bad log level")
	}
}

func Test_CLI_ListConfigs(t *testing.T) {
	out, err := execute(t, "configs")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	assert.Equal(t, "demo.default\ndemo.rollback\n", out)
}
