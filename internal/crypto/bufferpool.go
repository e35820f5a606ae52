// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"sync"
)

// BufferPool hands out chunk buffers for streaming encryption. Buffers are
// wiped when returned so plaintext never lingers in pooled memory.
//
// Every buffer has length Size() and one extra block of capacity for the
// PKCS#7 padding of the final chunk.
type BufferPool struct {
	size int
	pool sync.Pool
}

// NewBufferPool returns a pool of size-byte buffers. size is rounded up to a
// multiple of the AES block size.
func NewBufferPool(size int) *BufferPool {
	if size <= 0 {
		size = ChunkSize
	}
	if rem := size % aes.BlockSize; rem != 0 {
		size += aes.BlockSize - rem
	}
	p := &BufferPool{size: size}
	p.pool.New = func() any {
		b := make([]byte, size, size+aes.BlockSize)
		return &b
	}
	return p
}

// Size is the usable length of every buffer.
func (p *BufferPool) Size() int {
	return p.size
}

// Get returns a buffer of length Size().
func (p *BufferPool) Get() []byte {
	b := p.pool.Get().(*[]byte)
	return (*b)[:p.size]
}

// Put wipes b and returns it to the pool. Buffers not obtained from Get are
// wiped and dropped.
func (p *BufferPool) Put(b []byte) {
	if b == nil {
		return
	}
	full := b[:cap(b)]
	SecureWipe(full)
	if cap(b) != p.size+aes.BlockSize {
		return
	}
	full = full[:p.size]
	p.pool.Put(&full)
}
