package startup

import "unsafe"

// Block is a process-start block assembled in ordinary memory, laid out
// word for word the way the kernel lays one out on the initial stack.
// It exists so the current process can be re-described (Current) and so
// tests can build fixtures without forking.
type Block struct {
	// words backs the argc/argv/envp/auxv layout. String addresses are
	// stored as bare uintptr values, invisible to the garbage collector,
	// so the strings live in strs and the Block must stay reachable for
	// as long as any view of it is in use.
	words []uintptr
	// strs holds every argument and environment string, NUL-terminated,
	// back to back. It is sized once before any address is taken.
	strs []byte
}

// Base returns the address of the block's leading argc word.
func (b *Block) Base() unsafe.Pointer {
	return unsafe.Pointer(&b.words[0])
}

// Stack decodes the block. The returned Stack keeps the block reachable,
// so its views stay valid without further care from the caller.
func (b *Block) Stack() Stack {
	st := Decode(b.Base())
	st.hold = b
	return st
}

// Pack assembles a block from argument strings, environment entries in
// "NAME=value" form, and auxiliary vector entries. The AT_NULL terminator
// is appended and must not be included in auxv. Strings must not contain
// NUL bytes; pointer-valued auxv entries are copied as given, so their
// targets must outlive the block.
func Pack(args, env []string, auxv []AuxEnt) *Block {
	total := 0
	for _, s := range args {
		total += len(s) + 1
	}
	for _, s := range env {
		total += len(s) + 1
	}
	if total == 0 {
		total = 1
	}

	b := &Block{
		words: make([]uintptr, 1+len(args)+1+len(env)+1+2*(len(auxv)+1)),
		strs:  make([]byte, total),
	}

	off := 0
	put := func(s string) uintptr {
		p := &b.strs[off]
		copy(b.strs[off:], s)
		off += len(s) + 1
		return uintptr(unsafe.Pointer(p))
	}

	w := 0
	b.words[w] = uintptr(len(args))
	w++
	for _, s := range args {
		b.words[w] = put(s)
		w++
	}
	b.words[w] = 0
	w++
	for _, s := range env {
		b.words[w] = put(s)
		w++
	}
	b.words[w] = 0
	w++
	for _, a := range auxv {
		b.words[w] = a.Tag
		b.words[w+1] = a.Val
		w += 2
	}
	b.words[w] = AT_NULL
	b.words[w+1] = 0

	return b
}
