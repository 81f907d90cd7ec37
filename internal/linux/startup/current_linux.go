package startup

import (
	"encoding/binary"
	"fmt"
	"os"

	_ "unsafe" // for go:linkname
)

// runtimeGetAuxv returns the runtime's saved copy of the auxiliary vector,
// as flat tag/value word pairs without the AT_NULL terminator.
//
//go:linkname runtimeGetAuxv runtime.getAuxv
func runtimeGetAuxv() []uintptr

// Current re-describes the running process as a startup block: os.Args,
// os.Environ and the host auxiliary vector packed into kernel layout and
// decoded with the same Decode that serves raw blocks. Pointer-valued auxv
// entries still point at the original process image.
func Current() (Stack, error) {
	auxv, err := hostAuxv()
	if err != nil {
		return Stack{}, fmt.Errorf("read auxiliary vector: %w", err)
	}
	return Pack(os.Args, os.Environ(), auxv).Stack(), nil
}

// hostAuxv prefers the runtime's copy of the auxiliary vector and falls
// back to /proc/self/auxv. The returned entries carry no AT_NULL pair.
func hostAuxv() ([]AuxEnt, error) {
	raw := runtimeGetAuxv()
	if len(raw) < 2 || len(raw)%2 != 0 {
		return procAuxv()
	}
	out := make([]AuxEnt, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == AT_NULL {
			break
		}
		out = append(out, AuxEnt{Tag: raw[i], Val: raw[i+1]})
	}
	return out, nil
}

func procAuxv() ([]AuxEnt, error) {
	raw, err := os.ReadFile("/proc/self/auxv")
	if err != nil {
		return nil, err
	}
	step := 2 * int(wordSize)
	out := make([]AuxEnt, 0, len(raw)/step)
	for i := 0; i+step <= len(raw); i += step {
		tag := readWord(raw[i:])
		if tag == AT_NULL {
			break
		}
		out = append(out, AuxEnt{Tag: tag, Val: readWord(raw[i+int(wordSize):])})
	}
	return out, nil
}

func readWord(b []byte) uintptr {
	if wordSize == 8 {
		return uintptr(binary.NativeEndian.Uint64(b))
	}
	return uintptr(binary.NativeEndian.Uint32(b))
}
