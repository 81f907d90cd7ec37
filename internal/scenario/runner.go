// Package scenario provides a YAML-driven harness that exercises the built
// nacl-interp binary end to end: a real execve chain into a recording stub
// loader, with assertions on what the stub received.
package scenario

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// loaderEnv mirrors the variable the shim consults.
const loaderEnv = "NACL_INTERP_LOADER"

// Runner executes scenario cases against a built shim binary.
type Runner struct {
	// Shim is the path of the nacl-interp binary under test.
	Shim string
	// Stub is the recording loader: a script that prints each of its
	// arguments on its own line.
	Stub string
	// NoExec is a file that exists but cannot be executed.
	NoExec string
	// Timeout bounds each case when the scenario sets none.
	Timeout time.Duration
	// Log, when set, traces each invocation.
	Log *slog.Logger
}

// Result captures one shim invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Run invokes the shim for one case.
func (r *Runner) Run(ctx context.Context, c Case) (Result, error) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.Shim, c.Args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = r.caseEnv(c)

	if r.Log != nil {
		r.Log.Debug("running case", "name", c.Name, "loader", string(c.Loader), "args", c.Args)
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		switch {
		case ok:
			res.ExitCode = exitErr.ExitCode()
		case runCtx.Err() == context.DeadlineExceeded:
			return res, fmt.Errorf("case %s timed out", c.Name)
		default:
			return res, fmt.Errorf("running shim: %w", err)
		}
	}
	return res, nil
}

// caseEnv builds the environment for a case: the parent environment with
// the loader variable scrubbed, then the case's own variables, then the
// loader selection.
func (r *Runner) caseEnv(c Case) []string {
	env := make([]string, 0, len(os.Environ())+len(c.Env)+1)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, loaderEnv+"=") {
			continue
		}
		env = append(env, kv)
	}
	for k, v := range c.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	switch c.Loader {
	case LoaderNone:
	case LoaderStub:
		env = append(env, fmt.Sprintf("%s=%s", loaderEnv, r.Stub))
	case LoaderNoExec:
		env = append(env, fmt.Sprintf("%s=%s", loaderEnv, r.NoExec))
	default:
		env = append(env, fmt.Sprintf("%s=%s", loaderEnv, c.Loader))
	}
	return env
}
