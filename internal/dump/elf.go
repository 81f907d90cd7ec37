package dump

import (
	"bytes"
	"debug/elf"
	"fmt"
	"io"
	"os"
)

// runInterpReport prints the PT_INTERP of each path and returns the process
// exit status.
func runInterpReport(paths []string) int {
	code := 0
	for _, path := range paths {
		interpPath, err := fileInterp(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "interp-dump: %s: %v\n", path, err)
			code = 1
			continue
		}
		if interpPath == "" {
			fmt.Printf("%s: no PT_INTERP\n", path)
			continue
		}
		fmt.Printf("%s: %s\n", path, interpPath)
	}
	return code
}

func fileInterp(path string) (string, error) {
	f, err := elf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return elfInterp(f)
}

// elfInterp returns f's PT_INTERP path, or "" when it carries none.
func elfInterp(f *elf.File) (string, error) {
	for _, prog := range f.Progs {
		if prog.Type != elf.PT_INTERP {
			continue
		}
		data := make([]byte, prog.Filesz)
		if _, err := io.ReadFull(prog.Open(), data); err != nil {
			return "", fmt.Errorf("read PT_INTERP segment: %w", err)
		}
		return string(bytes.TrimRight(data, "\x00")), nil
	}
	return "", nil
}
