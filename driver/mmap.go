package driver

import (
	"github.com/Kirov7/CouloyIO/public"
	"golang.org/x/exp/mmap"
)

// MMap Read-only driver backed by a memory mapping
type MMap struct {
	readAt *mmap.ReaderAt
}

func NewMMap(fileName string) (*MMap, error) {
	readAt, err := mmap.Open(fileName)
	if err != nil {
		return nil, err
	}
	return &MMap{readAt: readAt}, nil
}

func (m *MMap) Read(bytes []byte, offset int64) (int, error) {
	return m.readAt.ReadAt(bytes, offset)
}

func (m *MMap) Write(bytes []byte) (int, error) {
	return 0, public.ErrUnsupported
}

func (m *MMap) Sync() error {
	return public.ErrUnsupported
}

func (m *MMap) Close() error {
	return m.readAt.Close()
}

func (m *MMap) Size() (int64, error) {
	return int64(m.readAt.Len()), nil
}

func (m *MMap) Truncate(size int64) error {
	return public.ErrUnsupported
}
