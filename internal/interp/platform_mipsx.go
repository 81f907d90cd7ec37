//go:build mips || mipsle || mips64 || mips64le

package interp

const defaultPlatform = "mips"
