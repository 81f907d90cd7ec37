package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

var testRunner Runner

// stubScript records what the shim handed the loader: each argument on its
// own line, then the MARKER variable so environment passthrough shows up.
const stubScript = `#!/bin/sh
printf '%s\n' "$@"
printf 'MARKER=%s\n' "$MARKER"
`

func TestMain(m *testing.M) {
	if runtime.GOOS != "linux" {
		// The shim only builds for linux.
		os.Exit(0)
	}

	tmp, err := os.MkdirTemp("", "nacl-interp-test-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "mkdtemp: %v\n", err)
		os.Exit(1)
	}
	fail := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format, args...)
		os.RemoveAll(tmp)
		os.Exit(1)
	}

	shim := filepath.Join(tmp, "nacl-interp")
	build := exec.Command("go", "build", "-o", shim, "github.com/frobtech/nacl-interp/cmd/nacl-interp")
	build.Dir = moduleRoot()
	if out, err := build.CombinedOutput(); err != nil {
		fail("building shim: %v\n%s", err, out)
	}

	stub := filepath.Join(tmp, "loader-stub")
	if err := os.WriteFile(stub, []byte(stubScript), 0o755); err != nil {
		fail("writing stub: %v\n", err)
	}
	noexec := filepath.Join(tmp, "loader-noexec")
	if err := os.WriteFile(noexec, []byte("#!/bin/sh\n"), 0o644); err != nil {
		fail("writing noexec file: %v\n", err)
	}

	testRunner = Runner{Shim: shim, Stub: stub, NoExec: noexec}
	code := m.Run()
	os.RemoveAll(tmp)
	os.Exit(code)
}

// moduleRoot locates the repository root from this file's position.
func moduleRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

func TestScenarios(t *testing.T) {
	scenarios, err := LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			runner := testRunner
			runner.Timeout = sc.Timeout.Duration()
			if testing.Verbose() {
				runner.Log = slog.Default()
			}
			for _, c := range sc.Cases {
				t.Run(c.Name, func(t *testing.T) {
					res, err := runner.Run(context.Background(), c)
					require.NoError(t, err)
					if errs := Assert(res, c.Expect); len(errs) > 0 {
						t.Fatal(FormatErrors(errs))
					}
				})
			}
		})
	}
}
