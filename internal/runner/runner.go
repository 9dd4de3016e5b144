// Package runner executes a user's flake script and captures the text it
// emits. The script is an ordinary Go program that builds a flake with
// the flake package and prints the rendered document to stdout.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/flakesmith/flakesmith/internal/errors"
	"github.com/flakesmith/flakesmith/internal/logging"
)

// Runner executes a flake script and returns its captured stdout.
type Runner interface {
	Run(ctx context.Context, scriptPath string) ([]byte, error)
}

// GoRunner runs flake scripts with "go run". The script's directory is
// used as the working directory so the script resolves against its own
// module.
type GoRunner struct {
	bin    string
	logger logging.Logger
}

// NewGoRunner creates a runner using the go binary from PATH.
func NewGoRunner(logger logging.Logger) *GoRunner {
	return &GoRunner{bin: "go", logger: logger.WithComponent("runner")}
}

// Run executes the script and returns its stdout. A non-zero exit
// surfaces as an exec error carrying the script's stderr diagnostics;
// a successful run that prints nothing is also an error, since an empty
// flake document is never intentional.
func (r *GoRunner) Run(ctx context.Context, scriptPath string) ([]byte, error) {
	abs, err := filepath.Abs(scriptPath)
	if err != nil {
		return nil, errors.NewIOError("script_path", "failed to resolve script path", err).WithPath(scriptPath)
	}

	r.logger.Debug(ctx, "running flake script", "script", abs)

	cmd := exec.CommandContext(ctx, r.bin, "run", abs)
	cmd.Dir = filepath.Dir(abs)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		msg := "script execution failed"
		if diag != "" {
			msg = fmt.Sprintf("script execution failed: %s", diag)
		}
		return nil, errors.NewExecError("script_failed", msg, err).WithPath(abs)
	}

	output := stdout.Bytes()
	if len(bytes.TrimSpace(output)) == 0 {
		return nil, errors.NewExecError("empty_output", "script produced no output", nil).WithPath(abs)
	}

	return output, nil
}
