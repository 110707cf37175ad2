package pdfrx

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pdfrx/pdfrx-go/fileaccess"
	"github.com/pdfrx/pdfrx-go/internal/ffi"
)

// Document is an open PDF document.
//
// PDFium is not thread-safe, so all calls on one Document (including its
// pages) are serialized on an internal mutex. A Document must not be used
// from the goroutine that completes its byte source's reads; the engine
// blocks that goroutine's counterpart while waiting for bytes.
type Document struct {
	mu sync.Mutex

	lib    *ffi.Library
	handle ffi.DocumentHandle

	bridge  *fileaccess.Bridge
	fa      *ffi.FileAccess // keeps the descriptor reachable while open
	release func()
	closer  io.Closer // extra resource owned by OpenFile, may be nil

	pageCount int
	closed    bool
}

// OpenBridge opens a document whose bytes arrive through an existing file
// access bridge. This is the entry point for embedders whose byte source is
// asynchronous: they create the bridge with fileaccess.New, answer its read
// requests with Complete, and hand it here. The document takes ownership of
// the bridge and closes it with Close.
func OpenBridge(bridge *fileaccess.Bridge, opts ...OpenOption) (*Document, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	lib, err := activeEngine()
	if err != nil {
		bridge.Close()
		return nil, err
	}

	fa, release := ffi.NewFileAccess(bridge)
	handle := lib.LoadCustomDocument(fa, ffi.CString(o.password))
	if handle == 0 {
		code := lib.LastError()
		release()
		bridge.Close()
		return nil, loadError(code)
	}

	doc := &Document{
		lib:       lib,
		handle:    handle,
		bridge:    bridge,
		fa:        fa,
		release:   release,
		pageCount: int(lib.GetPageCount(handle)),
	}
	Logger().Info("document opened", "size", bridge.Size(), "pages", doc.pageCount)
	return doc, nil
}

// Open opens a document served from an io.ReaderAt of the given size. Reads
// are completed on background goroutines via the file access bridge.
func Open(src io.ReaderAt, size int64, opts ...OpenOption) (*Document, error) {
	bridge, err := fileaccess.NewReaderAtBridge(tracingReaderAt{src}, size)
	if err != nil {
		return nil, err
	}
	return OpenBridge(bridge, opts...)
}

// OpenBytes opens a document held in memory.
func OpenBytes(data []byte, opts ...OpenOption) (*Document, error) {
	return OpenBridge(fileaccess.NewBytesBridge(data), opts...)
}

// OpenFile opens a document from the file system. The file stays open for
// the lifetime of the document and is closed by Close.
func OpenFile(path string, opts ...OpenOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdfrx: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("pdfrx: %w", err)
	}
	doc, err := Open(f, info.Size(), opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	doc.closer = f
	return doc, nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pageCount
}

// Page loads the page at index (zero-based). The page must be closed before
// the document.
func (d *Document) Page(index int) (*Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, ErrClosed
	}
	if index < 0 || index >= d.pageCount {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageIndex, index, d.pageCount)
	}
	handle := d.lib.LoadPage(d.handle, int32(index))
	if handle == 0 {
		return nil, fmt.Errorf("%w: page %d", ErrPage, index)
	}
	return &Page{doc: d, index: index, handle: handle}, nil
}

// Close releases the native document, the file access descriptor and the
// underlying byte source. Close is idempotent. No read is in flight once
// the native document is closed, so the bridge shuts down cleanly.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true

	d.lib.CloseDocument(d.handle)
	d.handle = 0
	d.release()
	d.fa = nil
	err := d.bridge.Close()
	if d.closer != nil {
		if cerr := d.closer.Close(); err == nil {
			err = cerr
		}
	}
	Logger().Info("document closed")
	return err
}

// loadError maps the engine's document-load error code to a sentinel.
func loadError(code uint64) error {
	switch code {
	case ffi.ErrCodeFile:
		return ErrFile
	case ffi.ErrCodeFormat:
		return ErrFormat
	case ffi.ErrCodePassword:
		return ErrPassword
	case ffi.ErrCodeSecurity:
		return ErrSecurity
	case ffi.ErrCodePage:
		return ErrPage
	default:
		return fmt.Errorf("%w (code %d)", ErrLoadUnknown, code)
	}
}

// tracingReaderAt logs each byte-range request at debug level.
type tracingReaderAt struct {
	r io.ReaderAt
}

func (t tracingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	n, err := t.r.ReadAt(p, off)
	Logger().Debug("read block", "position", off, "size", len(p), "read", n, "error", err)
	return n, err
}
