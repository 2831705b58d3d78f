package CouloyIO

import (
	"os"

	"github.com/Kirov7/CouloyIO/driver"
	"github.com/Kirov7/CouloyIO/public"
	"github.com/gofrs/flock"
)

// WriteFull keeps issuing writes until all of b has been committed. A write
// reporting zero bytes with no error ends the loop with public.ErrNoProgress.
func WriteFull(h driver.IOManager, b []byte) (int, error) {
	var n int
	for n < len(b) {
		nn, err := h.Write(b[n:])
		n += nn
		if err != nil {
			return n, err
		}
		if nn == 0 {
			return n, public.ErrNoProgress
		}
	}
	return n, nil
}

// WriteEntireFile writes data to path, creating the file if absent and
// truncating any existing content first.
func WriteEntireFile(path string, data []byte) bool {
	return WriteEntireFileWithOptions(path, data, DefaultWriteOptions())
}

// WriteEntireFileWithOptions commits the whole buffer with a single write
// call. A short write that raises no error still counts as success, matching
// the primitive layer's contract; set Strict to route through WriteFull so
// short writes become failures. The handle is closed on every exit path, and
// so is the file lock when Lock is set.
func WriteEntireFileWithOptions(path string, data []byte, opt WriteOptions) bool {
	if opt.Perm == 0 {
		opt.Perm = driver.DataFilePerm
	}
	if opt.Lock {
		fileLock := flock.New(path + public.FileLockSuffix)
		locked, err := fileLock.TryLock()
		if err != nil || !locked {
			return false
		}
		defer fileLock.Unlock()
	}

	flag := os.O_WRONLY | os.O_CREATE
	if opt.Truncate {
		flag |= os.O_TRUNC
	}
	h, err := driver.OpenIOManager(path, flag, opt.Perm)
	if err != nil {
		return false
	}
	defer h.Close()

	if opt.Strict {
		_, err = WriteFull(h, data)
	} else {
		_, err = h.Write(data)
	}
	return err == nil
}
