package interp

const defaultPlatform = "i386"
