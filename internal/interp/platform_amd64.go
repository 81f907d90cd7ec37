package interp

// defaultPlatform is the compiled-in AT_PLATFORM fallback for this
// architecture, matching what the kernel reports.
const defaultPlatform = "x86_64"
