package interp

const defaultPlatform = "arm"
