package interp

const defaultPlatform = "aarch64"
