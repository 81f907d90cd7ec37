package interp

import (
	"errors"

	"github.com/frobtech/nacl-interp/internal/diag"
	"github.com/frobtech/nacl-interp/internal/linux/startup"
)

// Main runs the whole redirect: describe the process startup state, derive
// the execution context, plan the redirect and hand the process over to the
// delegate loader. It does not return; either execve replaces the image or
// a diagnostic is written and the process exits.
func Main() {
	st, err := startup.Current()
	if err != nil {
		diag.Fail("cannot read process start state: ", []byte(err.Error()), "", 0)
	}

	ctx := Resolve(st)
	plan, err := PlanRedirect(ctx, st)
	if err != nil {
		failPlan(err, ctx)
	}

	errno := exec(plan, st)
	diag.Fail("failed to execute ", startup.Bytes(plan.Loader), "errno", int64(errno))
}

func failPlan(err error, ctx Context) {
	switch {
	case errors.Is(err, ErrSecureExec):
		diag.Fail("refusing secure exec of ", startup.Bytes(ctx.ExecFN), "", 0)
	case errors.Is(err, ErrLoaderNotSet):
		diag.Fail("environment variable "+loaderEnv+" must be set to run a NaCl binary directly", nil, "", 0)
	default:
		diag.Fail("cannot plan redirect: ", []byte(err.Error()), "", 0)
	}
}
