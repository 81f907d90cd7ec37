// Package interp implements the bootstrap-and-redirect path of nacl-interp,
// a shim installed as the PT_INTERP of NaCl executables. Instead of linking
// the program it was invoked for, the shim re-executes a delegate loader
// named by the environment, passing along the hardware platform and the
// path of the original executable.
//
// Context resolution and planning work over pointer views into startup
// memory; planning allocates only the new argument vector.
package interp

import (
	"github.com/frobtech/nacl-interp/internal/linux/startup"
)

// Context is the execution context derived from a startup block: the path
// the kernel executed, the hardware platform string, and whether the
// process requires secure-exec handling.
type Context struct {
	ExecFN   *byte
	Platform *byte
	Secure   bool
}

// defaultPlatformCStr backs the Platform fallback. The constant carries its
// own terminator so the pointer is usable in an exec vector as is.
var defaultPlatformCStr = startup.CStr(defaultPlatform + "\x00")

// Resolve derives the Context from a decoded startup block in one pass over
// the auxiliary vector. When a tag repeats, the last entry wins. Absent
// tags fall back:
//
//   - AT_EXECFN: the /proc/self/exe link target, then argv[0]
//   - AT_PLATFORM: the compiled-in default for this architecture
//   - AT_SECURE: treated as set, so a stripped vector fails closed
func Resolve(st startup.Stack) Context {
	ctx := Context{Secure: true}
	for _, a := range st.Auxv {
		switch a.Tag {
		case startup.AT_EXECFN:
			ctx.ExecFN = a.Ptr()
		case startup.AT_PLATFORM:
			ctx.Platform = a.Ptr()
		case startup.AT_SECURE:
			ctx.Secure = a.Val != 0
		}
	}
	if ctx.ExecFN == nil {
		ctx.ExecFN = selfExecPath()
	}
	if ctx.ExecFN == nil && st.Argc > 0 {
		ctx.ExecFN = st.Argv[0]
	}
	if ctx.Platform == nil {
		ctx.Platform = defaultPlatformCStr
	}
	return ctx
}
