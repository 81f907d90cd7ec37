package interp

import "errors"

// Planning failures. Neither is retried: the shim reports one line and
// exits.
var (
	// ErrSecureExec means the process runs with secure-exec semantics
	// (setuid, setgid, or a capability transition) and must not honor
	// caller-controlled redirection.
	ErrSecureExec = errors.New("refusing secure exec")

	// ErrLoaderNotSet means the environment names no delegate loader.
	ErrLoaderNotSet = errors.New(loaderEnv + " not set")
)
