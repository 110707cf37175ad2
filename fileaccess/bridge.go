package fileaccess

import "sync"

// Status is the outcome of a single read, using the native engine's
// get-block convention: zero means the read failed and the buffer contents
// are undefined, non-zero means the buffer was fully written.
type Status int

// Read outcomes reported through Complete and returned by ReadBlock.
const (
	ReadFailure Status = 0
	ReadSuccess Status = 1
)

// ReadFunc asks an asynchronous byte source to begin filling buf with
// len(buf) bytes starting at position. The token is the opaque value passed
// to New, returned unchanged so the source can correlate the request with a
// session. ReadFunc must not block on the read itself; the source must
// eventually call Complete exactly once per invocation, from any goroutine,
// once the fill has finished or failed.
type ReadFunc func(token any, position int64, buf []byte)

// Bridge presents a synchronous "read n bytes at offset" operation on top of
// a request-now/complete-later byte source.
//
// At most one read is in flight at a time; concurrent ReadBlock calls are
// serialized. ReadBlock must not be called from the goroutine that is
// responsible for calling Complete, or both sides deadlock.
type Bridge struct {
	size  int64
	read  ReadFunc
	token any

	// readMu serializes ReadBlock so at most one request is in flight.
	readMu sync.Mutex

	mu     sync.Mutex
	done   chan Status // non-nil exactly while a read is in flight
	closed bool
}

// New creates a bridge for a logical file of size bytes whose contents are
// delivered by read. The size must be the true byte length of the resource;
// the native engine uses it to bound read requests. The read callback must
// remain valid for the lifetime of the bridge. No I/O happens until the
// first ReadBlock call.
func New(size int64, read ReadFunc, token any) *Bridge {
	return &Bridge{size: size, read: read, token: token}
}

// Size returns the total byte length of the logical file.
func (b *Bridge) Size() int64 { return b.size }

// ReadBlock requests len(buf) bytes starting at position and blocks the
// calling goroutine until the byte source reports the outcome via Complete.
// The engine is expected to keep position+len(buf) within Size; ReadBlock
// does not re-validate the range.
//
// ReadBlock returns ReadFailure without issuing a request if the bridge is
// closed, and an in-flight ReadBlock returns ReadFailure when Close is
// called while it waits.
func (b *Bridge) ReadBlock(position int64, buf []byte) Status {
	b.readMu.Lock()
	defer b.readMu.Unlock()

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ReadFailure
	}
	done := make(chan Status, 1)
	b.done = done
	b.mu.Unlock()

	b.read(b.token, position, buf)
	return <-done
}

// Complete reports the outcome of the read most recently requested through
// ReadBlock and wakes the waiting goroutine. It is the only way a blocked
// ReadBlock returns (besides Close).
//
// Complete with no read in flight drops the signal and returns
// ErrNoPendingRead; there is no queued readiness. Complete on a closed
// bridge returns ErrClosed.
func (b *Bridge) Complete(status Status) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if b.done == nil {
		return ErrNoPendingRead
	}
	b.done <- status
	b.done = nil
	return nil
}

// Close releases the bridge. A read in flight is completed with ReadFailure
// so its caller unblocks; the byte source's late Complete for that read is
// then rejected with ErrClosed. Close is idempotent.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	if b.done != nil {
		b.done <- ReadFailure
		b.done = nil
	}
	return nil
}
