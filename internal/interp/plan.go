package interp

import (
	"github.com/frobtech/nacl-interp/internal/linux/startup"
)

// loaderEnv names the delegate loader executable.
const loaderEnv = "NACL_INTERP_LOADER"

// Plan is a constructed redirect: the loader to execute and the argument
// vector to hand it. Argv carries the loader itself first, then platform
// and executable path, then the original arguments after argv[0], then a
// NULL terminator.
type Plan struct {
	Loader *byte
	Argv   []*byte
}

// PlanRedirect enforces the secure-exec policy, locates the delegate loader
// in the block's environment and builds the new argument vector. Policy
// comes first: a secure process is refused before the environment is ever
// consulted.
func PlanRedirect(ctx Context, st startup.Stack) (Plan, error) {
	if ctx.Secure {
		return Plan{}, ErrSecureExec
	}
	loader := startup.Getenv(st.Envp, loaderEnv)
	if loader == nil {
		return Plan{}, ErrLoaderNotSet
	}

	argv := make([]*byte, 0, st.Argc+3)
	argv = append(argv, loader, ctx.Platform, ctx.ExecFN)
	if len(st.Argv) > 0 {
		argv = append(argv, st.Argv[1:]...)
	}
	argv = append(argv, nil)

	return Plan{Loader: loader, Argv: argv}, nil
}

// Args renders the plan's argument vector as Go strings, without the NULL
// terminator. For inspection tools; the redirect path never calls it.
func (p Plan) Args() []string {
	out := make([]string, 0, len(p.Argv))
	for _, a := range p.Argv {
		if a == nil {
			break
		}
		out = append(out, startup.Str(a))
	}
	return out
}
