package interp

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/frobtech/nacl-interp/internal/linux/startup"
)

func TestExecReturnsErrno(t *testing.T) {
	st := startup.Pack([]string{"prog"}, []string{"A=1"}, nil).Stack()

	loader := cb("/nonexistent/loader/path")
	plan := Plan{Loader: &loader[0], Argv: []*byte{&loader[0], nil}}

	require.Equal(t, unix.ENOENT, exec(plan, st))

	runtime.KeepAlive(loader)
}
