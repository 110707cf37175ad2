package ffi

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/pdfrx/pdfrx-go/fileaccess"
)

// FileAccess mirrors FPDF_FILEACCESS, the descriptor PDFium's custom
// document loader consumes: total file length plus a synchronous get-block
// function it calls whenever it needs bytes.
type FileAccess struct {
	FileLen  culong
	GetBlock uintptr
	Param    uintptr
}

// The get-block callback cannot carry a Go pointer across the C boundary,
// so bridges are parked in a registry and identified by an integer token
// smuggled through the descriptor's Param field.
var (
	bridgeMu  sync.Mutex
	bridges   = make(map[uintptr]*fileaccess.Bridge)
	nextToken uintptr
)

// getBlockCallback creates the C-callable trampoline once; NewCallback slots
// are a finite process-wide resource.
var getBlockCallback = sync.OnceValue(func() uintptr {
	return purego.NewCallback(getBlock)
})

func getBlock(param uintptr, position culong, buf *byte, size culong) int {
	bridgeMu.Lock()
	b := bridges[param]
	bridgeMu.Unlock()
	if b == nil || buf == nil || size == 0 {
		return int(fileaccess.ReadFailure)
	}
	dst := unsafe.Slice(buf, int(size))
	return int(b.ReadBlock(int64(position), dst))
}

// Read pulls bytes through the descriptor's get-block path from Go,
// bypassing the C trampoline. Fake engines in tests read document bytes
// with it; the semantics match what PDFium sees.
func (fa *FileAccess) Read(position int64, buf []byte) int {
	if len(buf) == 0 {
		return int(fileaccess.ReadFailure)
	}
	return getBlock(fa.Param, culong(position), &buf[0], culong(len(buf)))
}

// NewFileAccess builds a file-access descriptor backed by b and returns it
// with a release function that must be called once the document using the
// descriptor is closed. The descriptor must stay reachable for as long as
// PDFium holds the document open; PDFium keeps the pointer and calls back
// through it on every read.
func NewFileAccess(b *fileaccess.Bridge) (*FileAccess, func()) {
	bridgeMu.Lock()
	nextToken++
	token := nextToken
	bridges[token] = b
	bridgeMu.Unlock()

	fa := &FileAccess{
		FileLen:  culong(b.Size()),
		GetBlock: getBlockCallback(),
		Param:    token,
	}
	release := func() {
		bridgeMu.Lock()
		delete(bridges, token)
		bridgeMu.Unlock()
	}
	return fa, release
}
