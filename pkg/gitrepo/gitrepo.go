// Package gitrepo fetches the upstream security-analytics export by invoking
// the external GitHub CLI. The clone is synchronous and blocks until the
// command exits; a non-zero exit is surfaced as a CloneError carrying the
// captured stderr text.
package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/errors"
)

type (
	// Runner executes an external command and captures its output. It is
	// satisfied by the default exec-based implementation and allows tests to
	// substitute a fake without spawning processes.
	Runner interface {
		Run(ctx context.Context, name string, args ...string) (*Result, error)
	}

	// Result holds the captured output of a completed command. A non-zero
	// ExitCode is reported here rather than as an error so callers decide how
	// to classify the failure.
	Result struct {
		Stdout   []byte
		Stderr   []byte
		ExitCode int
	}

	// CloneError reports a clone invocation that exited non-zero. It carries
	// the command's stderr verbatim for the operator.
	CloneError struct {
		ExitCode int
		Stderr   string
	}

	execRunner struct{}
)

func (e *CloneError) Error() string {
	return fmt.Sprintf("clone exited with code %d: %s", e.ExitCode, e.Stderr)
}

// NewRunner returns the default Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return nil, errors.Wrapf(err, "failed to start %s", name)
		}
	}

	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

// Clone clones the given GitHub repository into dest using `gh repo clone`.
// The gh CLI must be available on PATH. The call blocks until the clone
// completes; there is no retry.
func Clone(ctx context.Context, r Runner, repo, dest string) error {
	res, err := r.Run(ctx, "gh", "repo", "clone", repo, dest)
	if err != nil {
		return err
	}

	if res.ExitCode != 0 {
		return &CloneError{ExitCode: res.ExitCode, Stderr: string(res.Stderr)}
	}

	return nil
}
