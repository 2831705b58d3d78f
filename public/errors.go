package public

import "errors"

var (
	ErrShortBuffer  = errors.New("the destination buffer is smaller than the requested minimum")
	ErrNoProgress   = errors.New("read no data but the demand is not satisfied yet")
	ErrFileOccupied = errors.New("file is occupied by another process")
	ErrUnsupported  = errors.New("the operation is not supported by this driver")
)
