package CouloyIO

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAllocator(t *testing.T) {
	alloc := HeapAllocator{}

	b, err := alloc.Make(64)
	assert.Nil(t, err)
	assert.Len(t, b, 64)

	// Release is a no-op for the heap
	alloc.Release(b)
}

func TestPooledAllocator(t *testing.T) {
	alloc := NewPooledAllocator(1024)

	b, err := alloc.Make(100)
	assert.Nil(t, err)
	assert.Len(t, b, 100)
	assert.Equal(t, 1024, cap(b))

	alloc.Release(b)

	again, err := alloc.Make(100)
	assert.Nil(t, err)
	assert.Len(t, again, 100)
	alloc.Release(again)
}

func TestPooledAllocator_Oversized(t *testing.T) {
	alloc := NewPooledAllocator(16)

	// requests beyond the pooled capacity fall through to the heap
	b, err := alloc.Make(64)
	assert.Nil(t, err)
	assert.Len(t, b, 64)
	assert.Equal(t, 64, cap(b))

	alloc.Release(b)
}

func TestPooledAllocator_ForeignBuffer(t *testing.T) {
	alloc := NewPooledAllocator(32)

	foreign := make([]byte, 10, 32)
	alloc.Release(foreign)

	b, err := alloc.Make(10)
	assert.Nil(t, err)
	assert.Len(t, b, 10)
	alloc.Release(b)
}
