package bufpool

import (
	"sync"
)

// A sized pool for []uint8 luma buffers to reduce allocations on the
// brute-force decode path, where hundreds of intermediate frames are
// produced and immediately discarded.

var bytePools sync.Map // key: size class (int), value: *sync.Pool

// sizeClass rounds n up to the next 64 KiB bucket to reduce churn.
func sizeClass(n int) int {
	const step = 64 * 1024
	if n <= step {
		return step
	}
	r := (n + step - 1) / step
	return r * step
}

// GetBytes retrieves a []uint8 buffer of at least n elements from the
// pool. The returned slice has length n but may have larger capacity.
// The caller must return it via PutBytes when done.
func GetBytes(n int) []uint8 {
	cls := sizeClass(n)
	pAny, _ := bytePools.LoadOrStore(cls, &sync.Pool{New: func() any { return make([]uint8, cls) }})
	p, ok := pAny.(*sync.Pool)
	if !ok {
		return make([]uint8, n)
	}
	buf, ok := p.Get().([]uint8)
	if !ok || cap(buf) < n {
		buf = make([]uint8, cls)
	}
	return buf[:n]
}

// PutBytes returns a buffer to the pool. It is safe to pass a nil
// slice. The caller must not retain any view of the buffer.
func PutBytes(buf []uint8) {
	if buf == nil {
		return
	}
	cls := sizeClass(cap(buf))
	pAny, _ := bytePools.LoadOrStore(cls, &sync.Pool{New: func() any { return make([]uint8, cls) }})
	if p, ok := pAny.(*sync.Pool); ok {
		p.Put(buf[:cap(buf)]) //nolint:staticcheck
	}
}
