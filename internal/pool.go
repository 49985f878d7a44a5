package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds buffers render payloads are encoded into.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// Buffer takes a reset buffer from the pool. It should be returned using PutBuffer once no longer used.
func Buffer() *bytes.Buffer {
	buf := BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool. Very large buffers are dropped.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 1<<20 {
		return
	}
	BufferPool.Put(buf)
}
