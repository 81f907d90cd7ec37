// nacl-interp runs dynamically linked NaCl executables directly on a Linux
// host. Installed at the PT_INTERP path such executables name (for example
// /lib64/ld-nacl-x86-64.so.1), it is invoked by the kernel in place of a
// real dynamic linker and immediately re-executes
//
//	${NACL_INTERP_LOADER} PLATFORM EXECUTABLE ARGS...
//
// where PLATFORM is the hardware platform string (x86_64, i386, ...),
// EXECUTABLE is the path of the program that was run, and ARGS are its
// remaining arguments. NACL_INTERP_LOADER is expected to name a program
// that picks the right sel_ldr setup for the platform.
//
// The shim refuses to run in secure-exec contexts, since the redirection
// target comes from the caller's environment.
package main

import "github.com/frobtech/nacl-interp/internal/interp"

func main() {
	interp.Main()
}
