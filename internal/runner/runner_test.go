package runner

import (
	"context"
	"testing"

	"github.com/flakesmith/flakesmith/internal/errors"
	"github.com/flakesmith/flakesmith/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunner(bin string) *GoRunner {
	return &GoRunner{bin: bin, logger: logging.NewLogger(nil)}
}

func TestRun_CapturesStdout(t *testing.T) {
	// echo stands in for the go binary; it prints its arguments, which is
	// enough to exercise the capture path.
	r := testRunner("echo")

	out, err := r.Run(context.Background(), "flake.go")
	require.NoError(t, err)
	assert.Contains(t, string(out), "run")
	assert.Contains(t, string(out), "flake.go")
}

func TestRun_NonZeroExit(t *testing.T) {
	r := testRunner("false")

	_, err := r.Run(context.Background(), "flake.go")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeExec))
	assert.Contains(t, err.Error(), "script execution failed")
}

func TestRun_EmptyOutput(t *testing.T) {
	r := testRunner("true")

	_, err := r.Run(context.Background(), "flake.go")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeExec))
	assert.Contains(t, err.Error(), "no output")
}

func TestRun_MissingBinary(t *testing.T) {
	r := testRunner("definitely-not-a-binary-on-this-system")

	_, err := r.Run(context.Background(), "flake.go")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeExec))
}

func TestRun_ContextCancellation(t *testing.T) {
	r := testRunner("sleep")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, "10")
	assert.Error(t, err)
}
