package CouloyIO

import (
	"os"

	"github.com/Kirov7/CouloyIO/driver"
)

type ReadOptions struct {
	// Allocator provides every internal buffer, nil means the heap
	Allocator Allocator
}

type WriteOptions struct {
	// Truncate discards existing content before the write
	Truncate bool
	// Strict loops until the whole buffer is committed instead of
	// trusting a single write call
	Strict bool
	// Lock holds an exclusive file lock next to the target for the
	// duration of the write
	Lock bool
	// Perm is applied when the file is created, zero means DataFilePerm.
	// Ignored on targets without POSIX permission bits.
	Perm os.FileMode
}

func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		Allocator: HeapAllocator{},
	}
}

func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Truncate: true,
		Perm:     driver.DataFilePerm,
	}
}
