// Package diag emits the fatal diagnostics of a process-bootstrap shim.
// The shim runs in place of a dynamic linker, where a broken process image
// is the expected failure mode, so this path stays primitive: no fmt, no
// buffered writers, no allocation. A message is assembled as an iovec array
// over existing memory, written to standard error in one vectored write,
// and the process is terminated with a fixed status.
package diag

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// prefix starts every diagnostic line.
const prefix = "nacl_interp: "

// ExitStatus is the status every fatal path exits with. Callers that need
// to distinguish failures read the message, not the status.
const ExitStatus = 2

// stderr is the descriptor diagnostics are written to. Tests point it at
// a pipe.
var stderr uintptr = 2

// Fail writes one diagnostic line and terminates the process. The line is
//
//	nacl_interp: <msg><detail>
//
// followed by ": <token>=<value>" when token is non-empty. detail may be
// nil. Fail never returns.
func Fail(msg string, detail []byte, token string, value int64) {
	emit(msg, detail, token, value)
	exitGroup(ExitStatus)
}

// emit assembles the line and hands it to writev in a single call so the
// fragments cannot interleave with other writers of the descriptor.
func emit(msg string, detail []byte, token string, value int64) {
	var nbuf [20]byte // len("-9223372036854775808")
	var iov [8]unix.Iovec

	set := func(i int, b []byte) {
		if len(b) == 0 {
			return
		}
		iov[i].Base = &b[0]
		iov[i].SetLen(len(b))
	}
	setStr := func(i int, s string) {
		if len(s) == 0 {
			return
		}
		iov[i].Base = unsafe.StringData(s)
		iov[i].SetLen(len(s))
	}

	setStr(0, prefix)
	setStr(1, msg)
	set(2, detail)
	if token != "" {
		setStr(3, ": ")
		setStr(4, token)
		setStr(5, "=")
		set(6, Itoa(nbuf[:], value))
	}
	setStr(7, "\n")

	unix.Syscall(unix.SYS_WRITEV, stderr, uintptr(unsafe.Pointer(&iov[0])), uintptr(len(iov)))
}

// exitGroup terminates every thread in the process. The loop is for the
// impossible case of the syscall returning.
func exitGroup(status int) {
	for {
		unix.Syscall(unix.SYS_EXIT_GROUP, uintptr(status), 0, 0)
	}
}
