package interp

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/frobtech/nacl-interp/internal/linux/startup"
)

// exec replaces the process image with the plan's loader, handing it the
// plan's argument vector and the original environment vector untouched.
// It returns only on failure.
func exec(p Plan, st startup.Stack) unix.Errno {
	_, _, errno := unix.Syscall(
		unix.SYS_EXECVE,
		uintptr(unsafe.Pointer(p.Loader)),
		uintptr(unsafe.Pointer(&p.Argv[0])),
		uintptr(st.EnvpBase()),
	)
	return errno
}
