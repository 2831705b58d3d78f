package public

import (
	"runtime"
	"unsafe"
)

const (
	FileLockSuffix = ".flock"
)

// PlatformInfo Compile-time/build configuration captured once at startup.
// It is frozen after init and must never be mutated.
type PlatformInfo struct {
	OS        string
	Arch      string
	BigEndian bool
	CoreCount int
}

var Platform = PlatformInfo{
	OS:        runtime.GOOS,
	Arch:      runtime.GOARCH,
	BigEndian: probeBigEndian(),
	CoreCount: runtime.NumCPU(),
}

func probeBigEndian() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 0
}
