package CouloyIO

import (
	"errors"
	"io"
)

type readStep struct {
	data []byte
	err  error
}

type writeStep struct {
	n   int
	err error
}

// scriptedHandle serves a fixed sequence of read/write results so short
// transfers and failure paths can be driven deterministically.
type scriptedHandle struct {
	reads      []readStep
	writes     []writeStep
	size       int64
	readCalls  int
	writeCalls int
	written    []byte
}

func (s *scriptedHandle) Read(b []byte, off int64) (int, error) {
	s.readCalls++
	if len(s.reads) == 0 {
		return 0, io.EOF
	}
	step := s.reads[0]
	s.reads = s.reads[1:]
	return copy(b, step.data), step.err
}

func (s *scriptedHandle) Write(b []byte) (int, error) {
	s.writeCalls++
	if len(s.writes) == 0 {
		s.written = append(s.written, b...)
		return len(b), nil
	}
	step := s.writes[0]
	s.writes = s.writes[1:]
	n := step.n
	if n > len(b) {
		n = len(b)
	}
	s.written = append(s.written, b[:n]...)
	return n, step.err
}

func (s *scriptedHandle) Sync() error {
	return nil
}

func (s *scriptedHandle) Close() error {
	return nil
}

func (s *scriptedHandle) Size() (int64, error) {
	return s.size, nil
}

func (s *scriptedHandle) Truncate(size int64) error {
	return nil
}

type recordingAllocator struct {
	failMake bool
	makes    int
	releases int
	last     []byte
}

func (a *recordingAllocator) Make(n int) ([]byte, error) {
	if a.failMake {
		return nil, errors.New("allocation failed")
	}
	a.makes++
	a.last = make([]byte, n)
	return a.last, nil
}

func (a *recordingAllocator) Release(b []byte) {
	a.releases++
}
