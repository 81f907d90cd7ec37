package interp

import "golang.org/x/sys/unix"

// selfPathBuf backs the ExecFN fallback. Package lifetime, so the pointer
// handed out stays valid through exec.
var selfPathBuf [4097]byte

// readSelfLink reads the /proc/self/exe link target. Tests swap it out.
var readSelfLink = func(buf []byte) (int, error) {
	return unix.Readlink("/proc/self/exe", buf)
}

// selfExecPath resolves the path of the running executable into a static
// NUL-terminated buffer, or nil when the link cannot be read.
func selfExecPath() *byte {
	n, err := readSelfLink(selfPathBuf[:len(selfPathBuf)-1])
	if err != nil || n <= 0 {
		return nil
	}
	selfPathBuf[n] = 0
	return &selfPathBuf[0]
}
