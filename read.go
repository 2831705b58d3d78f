package CouloyIO

import (
	"io"
	"os"

	"github.com/Kirov7/CouloyIO/driver"
	"github.com/Kirov7/CouloyIO/public"
)

// ReadAtLeast reads from h starting at offset off until at least min bytes
// have been placed into b. It keeps issuing reads into the unfilled remainder
// of b, so a source that serves short reads is still drained up to min.
// A read reporting zero bytes with no error ends the loop with
// public.ErrNoProgress. If min bytes were accumulated, any error raised by
// the read that satisfied the demand is discarded.
func ReadAtLeast(h driver.IOManager, b []byte, off int64, min int) (int, error) {
	if min > len(b) {
		return 0, public.ErrShortBuffer
	}
	var n int
	var err error
	for n < min && err == nil {
		var nn int
		nn, err = h.Read(b[n:], off+int64(n))
		if nn == 0 && err == nil {
			err = public.ErrNoProgress
		}
		n += nn
	}
	if n >= min {
		err = nil
	}
	return n, err
}

// ReadFull demands the buffer be completely filled.
func ReadFull(h driver.IOManager, b []byte, off int64) (int, error) {
	return ReadAtLeast(h, b, off, len(b))
}

// ReadEntireFile opens the file read-only, reads all of its content and
// closes it again. Detail about the failure cause is collapsed into the
// boolean; callers who need the precise error should drive ReadFull over
// their own handle.
func ReadEntireFile(path string) ([]byte, bool) {
	return ReadEntireFileWithOptions(path, DefaultReadOptions())
}

func ReadEntireFileWithOptions(path string, opt ReadOptions) ([]byte, bool) {
	h, err := driver.OpenIOManager(path, os.O_RDONLY, driver.DataFilePerm)
	if err != nil {
		return nil, false
	}
	defer h.Close()
	return ReadEntireFileWith(h, opt.Allocator)
}

// ReadEntireFileWith reads everything the already-open handle has to offer.
// The buffer is sized by a single Size query; every allocation and its
// matching release on failure go through the same allocator. A file that
// shrank between the size query and the read yields the bytes actually read,
// never a padded buffer.
func ReadEntireFileWith(h driver.IOManager, alloc Allocator) ([]byte, bool) {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	size, err := h.Size()
	if err != nil {
		return nil, false
	}
	if size == 0 {
		// an empty file is a legitimate artifact
		return []byte{}, true
	}
	buf, err := alloc.Make(int(size))
	if err != nil {
		return nil, false
	}
	n, err := ReadFull(h, buf, 0)
	if err != nil && err != io.EOF && err != public.ErrNoProgress {
		alloc.Release(buf)
		return nil, false
	}
	return buf[:n], true
}
