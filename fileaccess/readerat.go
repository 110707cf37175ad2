package fileaccess

import "io"

// NewReaderAtBridge creates a bridge backed by an io.ReaderAt of the given
// size. Each read request is served on its own goroutine, which fills the
// buffer with r.ReadAt and reports the outcome through Complete, so the
// engine-side ReadBlock caller and the completing side never share a
// goroutine. Short reads are reported as failures.
func NewReaderAtBridge(r io.ReaderAt, size int64) (*Bridge, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	var b *Bridge
	b = New(size, func(_ any, position int64, buf []byte) {
		go func() {
			status := ReadSuccess
			if n, err := r.ReadAt(buf, position); err != nil || n < len(buf) {
				status = ReadFailure
			}
			// A late completion after Close reports ErrClosed; the read
			// already returned ReadFailure, so there is nothing to do.
			_ = b.Complete(status)
		}()
	}, nil)
	return b, nil
}

// NewBytesBridge creates a bridge serving reads from an in-memory byte
// slice. Requests are completed inline: the one-slot rendezvous accepts a
// completion posted from within the read callback itself, before ReadBlock
// starts waiting.
func NewBytesBridge(data []byte) *Bridge {
	var b *Bridge
	b = New(int64(len(data)), func(_ any, position int64, buf []byte) {
		if position < 0 || position+int64(len(buf)) > int64(len(data)) {
			_ = b.Complete(ReadFailure)
			return
		}
		copy(buf, data[position:])
		_ = b.Complete(ReadSuccess)
	}, nil)
	return b
}
