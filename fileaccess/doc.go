// Package fileaccess adapts asynchronous, request/notify byte sources to the
// synchronous blocking read calls a native PDF engine performs while parsing
// a document.
//
// The native engine pulls bytes through a callback that must not return until
// the requested range is in the buffer. Many byte sources (virtual file
// systems, network streams, managed runtimes) can only be asked to start a
// read and answer later, on another goroutine. Bridge closes that gap with a
// one-shot rendezvous per read: ReadBlock issues the request and parks the
// calling goroutine; the source calls Complete from its own goroutine once
// the buffer is filled, releasing exactly one waiter.
//
// The protocol is strictly alternating: one request, then one completion,
// never overlapping. There is no queuing, no retry, and no timeout. If the
// source never calls Complete, ReadBlock blocks until the bridge is closed.
// For the common case of a byte source that is already an io.ReaderAt, use
// NewReaderAtBridge, which runs completions on its own goroutines.
package fileaccess
