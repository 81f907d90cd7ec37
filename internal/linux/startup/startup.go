// Package startup interprets the block of memory the Linux kernel places on
// the stack of a freshly executed process: the argument count, the argument
// and environment pointer vectors, and the ELF auxiliary vector.
//
// The layout, from the base address upward, is
//
//	argc         one machine word
//	argv[0..]    argc pointers, then a NULL terminator
//	envp[0..]    pointers until a NULL terminator
//	auxv[0..]    (tag, value) word pairs until an AT_NULL tag
//
// Decode walks that layout in place and returns pointer views into it; it
// copies nothing and allocates only the three header slices. Pack builds an
// equivalent block from ordinary Go values so the same decoder serves both
// the real process image and synthetic fixtures.
//
// All pointer arithmetic over the raw block lives in this package. Callers
// see *byte vector entries and AuxEnt pairs, never unsafe.Pointer.
package startup

import "unsafe"

const wordSize = unsafe.Sizeof(uintptr(0))

// Stack is a decoded process-start block. The slices alias the underlying
// block; they stay valid exactly as long as the block's memory does.
type Stack struct {
	// Argc is the argument count word.
	Argc int
	// Argv holds the argument vector, one pointer per argument, without
	// the trailing NULL entry.
	Argv []*byte
	// Envp holds the environment vector without the trailing NULL entry.
	Envp []*byte
	// Auxv holds the auxiliary vector including its AT_NULL terminator.
	Auxv []AuxEnt

	envpBase unsafe.Pointer
	hold     *Block
}

// EnvpBase returns the address of envp[0] within the block. The vector
// there is NULL-terminated and suitable to hand to execve unchanged.
func (s Stack) EnvpBase() unsafe.Pointer { return s.envpBase }

// Decode interprets the block starting at base. It trusts the kernel
// contract completely: no bounds are known, so a malformed block reads
// whatever follows it.
func Decode(base unsafe.Pointer) Stack {
	argc := int(*(*uintptr)(base))
	argv := unsafe.Slice((**byte)(unsafe.Add(base, wordSize)), argc)

	envpBase := unsafe.Add(base, uintptr(argc+2)*wordSize)
	n := 0
	for *(**byte)(unsafe.Add(envpBase, uintptr(n)*wordSize)) != nil {
		n++
	}
	envp := unsafe.Slice((**byte)(envpBase), n)

	auxvBase := unsafe.Add(envpBase, uintptr(n+1)*wordSize)
	m := 0
	for (*AuxEnt)(unsafe.Add(auxvBase, uintptr(m)*2*wordSize)).Tag != AT_NULL {
		m++
	}
	auxv := unsafe.Slice((*AuxEnt)(auxvBase), m+1)

	return Stack{
		Argc:     argc,
		Argv:     argv,
		Envp:     envp,
		Auxv:     auxv,
		envpBase: envpBase,
	}
}
