// Package tailbuffer provides a bounded buffer that retains only the most
// recently written bytes. It is used to keep the tail of subprocess output
// for error reporting without holding the full stream in memory.
package tailbuffer

import (
	"io"
	"sync"
)

type tailBuffer struct {
	lock     sync.Mutex
	buf      []byte
	capacity int
	start    int
	size     int
}

// NewTailBuffer returns a ReadWriter that keeps at most size bytes: older
// bytes are discarded as newer ones arrive. Reads consume from the oldest
// retained byte.
func NewTailBuffer(size uint) io.ReadWriter {
	return &tailBuffer{
		buf:      make([]byte, size),
		capacity: int(size),
	}
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	written := len(p)
	if b.capacity == 0 {
		return written, nil
	}
	// Only the last capacity bytes of the input can survive.
	if len(p) > b.capacity {
		p = p[len(p)-b.capacity:]
	}
	for _, c := range p {
		end := (b.start + b.size) % b.capacity
		b.buf[end] = c
		if b.size < b.capacity {
			b.size++
		} else {
			b.start = (b.start + 1) % b.capacity
		}
	}
	return written, nil
}

func (b *tailBuffer) Read(p []byte) (int, error) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.size == 0 {
		return 0, io.EOF
	}
	read := 0
	for read < len(p) && b.size > 0 {
		p[read] = b.buf[b.start]
		b.start = (b.start + 1) % b.capacity
		b.size--
		read++
	}
	return read, nil
}
