// interp-dump shows what nacl-interp would do without doing it. Run with no
// arguments it decodes the current process's startup state and prints the
// redirect the shim would perform, or the reason it would refuse. Run with
// file arguments it reports each file's PT_INTERP, so an installation can
// be checked.
package main

import "github.com/frobtech/nacl-interp/internal/dump"

func main() {
	dump.Main()
}
