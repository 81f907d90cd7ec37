package interp

const defaultPlatform = "riscv64"
