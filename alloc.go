package CouloyIO

import (
	"context"
	"sync"

	pool "github.com/jolestar/go-commons-pool/v2"
	"github.com/pkg/errors"
)

// Allocator is the allocation strategy threaded through the whole-file
// reader. Make and Release must come from the same instance so a buffer is
// always returned to the strategy that produced it.
type Allocator interface {
	Make(n int) ([]byte, error)
	Release(b []byte)
}

// HeapAllocator Plain platform allocator
type HeapAllocator struct{}

func (HeapAllocator) Make(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (HeapAllocator) Release(b []byte) {}

type pooledBuffer struct {
	data []byte
}

type BufferFactory struct {
	Cap int
}

func (f *BufferFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	if f.Cap <= 0 {
		return nil, errors.New("buffer capacity must be positive")
	}
	return pool.NewPooledObject(&pooledBuffer{data: make([]byte, f.Cap)}), nil
}

func (f *BufferFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (f *BufferFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	buf, ok := object.Object.(*pooledBuffer)
	return ok && len(buf.data) == f.Cap
}

func (f *BufferFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (f *BufferFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

// PooledAllocator recycles fixed-capacity buffers through an object pool.
// Requests larger than the pooled capacity fall through to the heap.
type PooledAllocator struct {
	capacity int
	pool     *pool.ObjectPool
	mu       sync.Mutex
	leased   map[*byte]*pooledBuffer
}

func NewPooledAllocator(capacity int) *PooledAllocator {
	return &PooledAllocator{
		capacity: capacity,
		pool:     pool.NewObjectPoolWithDefaultConfig(context.Background(), &BufferFactory{Cap: capacity}),
		leased:   make(map[*byte]*pooledBuffer),
	}
}

func (a *PooledAllocator) Make(n int) ([]byte, error) {
	if n > a.capacity || n == 0 {
		return make([]byte, n), nil
	}
	raw, err := a.pool.BorrowObject(context.Background())
	if err != nil {
		return nil, err
	}
	buf, ok := raw.(*pooledBuffer)
	if !ok {
		return nil, errors.New("type mismatch")
	}
	a.mu.Lock()
	a.leased[&buf.data[0]] = buf
	a.mu.Unlock()
	return buf.data[:n], nil
}

func (a *PooledAllocator) Release(b []byte) {
	if len(b) == 0 || cap(b) != a.capacity {
		return
	}
	a.mu.Lock()
	buf, ok := a.leased[&b[0]]
	if ok {
		delete(a.leased, &b[0])
	}
	a.mu.Unlock()
	if !ok {
		// not one of ours, leave it to the garbage collector
		return
	}
	_ = a.pool.ReturnObject(context.Background(), buf)
}
