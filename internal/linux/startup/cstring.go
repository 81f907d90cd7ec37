package startup

import "unsafe"

// strlen counts the bytes at p before the NUL terminator.
func strlen(p *byte) int {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return n
}

// Bytes returns a view of the NUL-terminated string at p, without the
// terminator. It returns nil for a nil pointer and does not allocate.
func Bytes(p *byte) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice(p, strlen(p))
}

// Str copies the NUL-terminated string at p into a Go string. It allocates
// and is meant for tests and inspection tools, not the exec path.
func Str(p *byte) string {
	return string(Bytes(p))
}

// CStr returns the address of the first byte of s. For use as a C string,
// s must itself end in a NUL byte; string constants built with an explicit
// "\x00" suffix qualify and live for the life of the process.
func CStr(s string) *byte {
	return unsafe.StringData(s)
}

// Getenv scans an environment vector for the entry named name and returns
// a pointer to the first byte of its value, or nil if no entry matches.
// A match is the exact name followed by '='; an entry that merely starts
// with name does not match.
func Getenv(envp []*byte, name string) *byte {
	for _, entry := range envp {
		if v := envMatch(entry, name); v != nil {
			return v
		}
	}
	return nil
}

func envMatch(entry *byte, name string) *byte {
	p := unsafe.Pointer(entry)
	for i := 0; i < len(name); i++ {
		if *(*byte)(unsafe.Add(p, i)) != name[i] {
			return nil
		}
	}
	if *(*byte)(unsafe.Add(p, len(name))) != '=' {
		return nil
	}
	return (*byte)(unsafe.Add(p, len(name)+1))
}
