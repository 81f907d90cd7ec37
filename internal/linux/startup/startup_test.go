package startup

import (
	"runtime"
	"testing"
	"unsafe"
)

func cbuf(s string) []byte {
	return append([]byte(s), 0)
}

func TestDecodeRecoversVectors(t *testing.T) {
	blk := Pack(
		[]string{"prog", "alpha", "beta"},
		[]string{"HOME=/root", "NACL_INTERP_LOADER=/opt/loader"},
		[]AuxEnt{{Tag: AT_PAGESZ, Val: 4096}, {Tag: AT_SECURE, Val: 0}},
	)
	st := blk.Stack()

	if st.Argc != 3 {
		t.Fatalf("Argc = %d, want 3", st.Argc)
	}
	wantArgs := []string{"prog", "alpha", "beta"}
	for i, want := range wantArgs {
		if got := Str(st.Argv[i]); got != want {
			t.Errorf("Argv[%d] = %q, want %q", i, got, want)
		}
	}

	if len(st.Envp) != 2 {
		t.Fatalf("len(Envp) = %d, want 2", len(st.Envp))
	}
	if got := Str(st.Envp[1]); got != "NACL_INTERP_LOADER=/opt/loader" {
		t.Errorf("Envp[1] = %q, want %q", got, "NACL_INTERP_LOADER=/opt/loader")
	}

	if len(st.Auxv) != 3 {
		t.Fatalf("len(Auxv) = %d, want 3 (two entries plus terminator)", len(st.Auxv))
	}
	if st.Auxv[0].Tag != AT_PAGESZ || st.Auxv[0].Val != 4096 {
		t.Errorf("Auxv[0] = %+v, want {AT_PAGESZ 4096}", st.Auxv[0])
	}
	if st.Auxv[1].Tag != AT_SECURE || st.Auxv[1].Val != 0 {
		t.Errorf("Auxv[1] = %+v, want {AT_SECURE 0}", st.Auxv[1])
	}
	if st.Auxv[2].Tag != AT_NULL {
		t.Errorf("Auxv[2].Tag = %d, want AT_NULL", st.Auxv[2].Tag)
	}
}

func TestDecodeStopsAtTerminators(t *testing.T) {
	argv0 := cbuf("prog")
	env0 := cbuf("A=1")
	plat := cbuf("x86_64")

	words := []uintptr{
		1,
		uintptr(unsafe.Pointer(&argv0[0])),
		0,
		uintptr(unsafe.Pointer(&env0[0])),
		0,
		AT_PLATFORM, uintptr(unsafe.Pointer(&plat[0])),
		AT_NULL, 0,
		// Words past the terminator must never be read as entries.
		0xdead, 0xbeef,
	}
	st := Decode(unsafe.Pointer(&words[0]))

	if st.Argc != 1 || len(st.Argv) != 1 {
		t.Fatalf("Argc = %d, len(Argv) = %d, want 1, 1", st.Argc, len(st.Argv))
	}
	if got := Str(st.Argv[0]); got != "prog" {
		t.Errorf("Argv[0] = %q, want %q", got, "prog")
	}
	if len(st.Envp) != 1 {
		t.Fatalf("len(Envp) = %d, want 1", len(st.Envp))
	}
	if len(st.Auxv) != 2 {
		t.Fatalf("len(Auxv) = %d, want 2", len(st.Auxv))
	}
	if got := Str(st.Auxv[0].Ptr()); st.Auxv[0].Tag != AT_PLATFORM || got != "x86_64" {
		t.Errorf("Auxv[0] = {%d %q}, want {AT_PLATFORM x86_64}", st.Auxv[0].Tag, got)
	}
	if st.Auxv[1].Tag != AT_NULL {
		t.Errorf("Auxv[1].Tag = %d, want AT_NULL", st.Auxv[1].Tag)
	}

	runtime.KeepAlive(argv0)
	runtime.KeepAlive(env0)
	runtime.KeepAlive(plat)
	runtime.KeepAlive(words)
}

func TestDecodeEmptyEnvironment(t *testing.T) {
	st := Pack([]string{"prog"}, nil, []AuxEnt{{Tag: AT_CLKTCK, Val: 100}}).Stack()

	if len(st.Envp) != 0 {
		t.Fatalf("len(Envp) = %d, want 0", len(st.Envp))
	}
	if len(st.Auxv) != 2 || st.Auxv[0].Tag != AT_CLKTCK {
		t.Fatalf("Auxv = %+v, want AT_CLKTCK then AT_NULL", st.Auxv)
	}
}

func TestEnvpBase(t *testing.T) {
	st := Pack([]string{"prog"}, []string{"A=1", "B=2"}, nil).Stack()

	base := (**byte)(st.EnvpBase())
	if *base != st.Envp[0] {
		t.Fatalf("EnvpBase does not point at Envp[0]")
	}
	// The word after the last entry is the vector's NULL terminator.
	term := *(**byte)(unsafe.Add(st.EnvpBase(), uintptr(len(st.Envp))*wordSize))
	if term != nil {
		t.Fatalf("envp terminator = %p, want nil", term)
	}
}

func TestPackLayout(t *testing.T) {
	blk := Pack([]string{"a"}, []string{"E=v"}, nil)

	if got, want := len(blk.words), 7; got != want {
		t.Fatalf("len(words) = %d, want %d", got, want)
	}
	if blk.words[0] != 1 {
		t.Errorf("argc word = %d, want 1", blk.words[0])
	}
	for _, i := range []int{2, 4, 6} {
		if blk.words[i] != 0 {
			t.Errorf("words[%d] = %#x, want 0", i, blk.words[i])
		}
	}
	if blk.words[5] != AT_NULL {
		t.Errorf("words[5] = %#x, want AT_NULL", blk.words[5])
	}
}
