package startup

import "unsafe"

// Auxiliary vector tags, from the Linux ABI. Values passed by the kernel
// but not named here still decode; they just have no symbolic name.
const (
	AT_NULL              = 0
	AT_IGNORE            = 1
	AT_EXECFD            = 2
	AT_PHDR              = 3
	AT_PHENT             = 4
	AT_PHNUM             = 5
	AT_PAGESZ            = 6
	AT_BASE              = 7
	AT_FLAGS             = 8
	AT_ENTRY             = 9
	AT_NOTELF            = 10
	AT_UID               = 11
	AT_EUID              = 12
	AT_GID               = 13
	AT_EGID              = 14
	AT_PLATFORM          = 15
	AT_HWCAP             = 16
	AT_CLKTCK            = 17
	AT_SECURE            = 23
	AT_BASE_PLATFORM     = 24
	AT_RANDOM            = 25
	AT_HWCAP2            = 26
	AT_RSEQ_FEATURE_SIZE = 27
	AT_RSEQ_ALIGN        = 28
	AT_HWCAP3            = 29
	AT_HWCAP4            = 30
	AT_EXECFN            = 31
	AT_SYSINFO           = 32
	AT_SYSINFO_EHDR      = 33
	AT_MINSIGSTKSZ       = 51
)

// AuxEnt is one auxiliary vector entry: a tag word and a value word. For
// pointer-valued tags the value is an address in the process image.
type AuxEnt struct {
	Tag uintptr
	Val uintptr
}

// Ptr reinterprets the entry's value as a pointer. Only meaningful for the
// pointer-valued tags (AT_PLATFORM, AT_EXECFN, AT_RANDOM, ...).
func (a AuxEnt) Ptr() *byte { return (*byte)(unsafe.Pointer(a.Val)) }

var auxvTagNames = map[uintptr]string{
	AT_NULL:              "AT_NULL",
	AT_IGNORE:            "AT_IGNORE",
	AT_EXECFD:            "AT_EXECFD",
	AT_PHDR:              "AT_PHDR",
	AT_PHENT:             "AT_PHENT",
	AT_PHNUM:             "AT_PHNUM",
	AT_PAGESZ:            "AT_PAGESZ",
	AT_BASE:              "AT_BASE",
	AT_FLAGS:             "AT_FLAGS",
	AT_ENTRY:             "AT_ENTRY",
	AT_NOTELF:            "AT_NOTELF",
	AT_UID:               "AT_UID",
	AT_EUID:              "AT_EUID",
	AT_GID:               "AT_GID",
	AT_EGID:              "AT_EGID",
	AT_PLATFORM:          "AT_PLATFORM",
	AT_HWCAP:             "AT_HWCAP",
	AT_CLKTCK:            "AT_CLKTCK",
	AT_SECURE:            "AT_SECURE",
	AT_BASE_PLATFORM:     "AT_BASE_PLATFORM",
	AT_RANDOM:            "AT_RANDOM",
	AT_HWCAP2:            "AT_HWCAP2",
	AT_RSEQ_FEATURE_SIZE: "AT_RSEQ_FEATURE_SIZE",
	AT_RSEQ_ALIGN:        "AT_RSEQ_ALIGN",
	AT_HWCAP3:            "AT_HWCAP3",
	AT_HWCAP4:            "AT_HWCAP4",
	AT_EXECFN:            "AT_EXECFN",
	AT_SYSINFO:           "AT_SYSINFO",
	AT_SYSINFO_EHDR:      "AT_SYSINFO_EHDR",
	AT_MINSIGSTKSZ:       "AT_MINSIGSTKSZ",
}

// TagName returns the symbolic name of tag, or the empty string for tags
// this package does not know.
func TagName(tag uintptr) string { return auxvTagNames[tag] }
