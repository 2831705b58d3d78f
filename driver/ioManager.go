package driver

import "os"

const (
	DataFilePerm = 0644
)

type IOManager interface {
	// Read By specifying the location data in a read the file
	Read([]byte, int64) (int, error)

	// Write Writing bytes of data to a file
	Write([]byte) (int, error)

	// Sync Make data persistent
	Sync() error

	// Close Close the driver
	Close() error

	Size() (int64, error)

	// Truncate Cut or extend the file to the given byte length
	Truncate(int64) error
}

// NewIOManager Init IOManager instance with the standard FileIO backend
func NewIOManager(fileName string) (IOManager, error) {
	return NewFileIOManager(fileName)
}

// OpenIOManager Init IOManager instance with explicit open flags and permission
func OpenIOManager(fileName string, flag int, perm os.FileMode) (IOManager, error) {
	return OpenFileIOManager(fileName, flag, perm)
}
