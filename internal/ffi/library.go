package ffi

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Opaque PDFium object handles. Values are raw native pointers; zero means
// the call that produced them failed.
type (
	DocumentHandle uintptr
	PageHandle     uintptr
	BitmapHandle   uintptr
	TextPageHandle uintptr
)

// LibraryConfig mirrors FPDF_LIBRARY_CONFIG (version 2).
type LibraryConfig struct {
	Version        int32
	UserFontPaths  uintptr
	Isolate        uintptr
	V8EmbedderSlot uint32
}

// Bitmap formats accepted by BitmapCreateEx.
const (
	BitmapBGR  = 2
	BitmapBGRx = 3
	BitmapBGRA = 4
)

// Flags for RenderPageBitmap.
const (
	RenderAnnotations = 0x01
	RenderLCDText     = 0x02
)

// Document load error codes reported by GetLastError.
const (
	ErrCodeSuccess  = 0
	ErrCodeUnknown  = 1
	ErrCodeFile     = 2
	ErrCodeFormat   = 3
	ErrCodePassword = 4
	ErrCodeSecurity = 5
	ErrCodePage     = 6
)

// Library is a loaded PDFium shared library with its entry points resolved
// into typed Go functions. The function fields are plain values so tests can
// assemble a Library from Go stand-ins without loading native code.
type Library struct {
	handle  uintptr
	binding []uintptr

	InitLibraryWithConfig func(config *LibraryConfig)
	DestroyLibrary        func()
	GetLastError          func() culong

	LoadCustomDocument func(fa *FileAccess, password *byte) DocumentHandle
	CloseDocument      func(doc DocumentHandle)
	GetPageCount       func(doc DocumentHandle) int32

	LoadPage       func(doc DocumentHandle, index int32) PageHandle
	ClosePage      func(page PageHandle)
	GetPageWidthF  func(page PageHandle) float32
	GetPageHeightF func(page PageHandle) float32

	BitmapCreateEx   func(width, height, format int32, firstScan uintptr, stride int32) BitmapHandle
	BitmapFillRect   func(bitmap BitmapHandle, left, top, width, height int32, color uint32)
	BitmapGetBuffer  func(bitmap BitmapHandle) unsafe.Pointer
	BitmapGetStride  func(bitmap BitmapHandle) int32
	BitmapDestroy    func(bitmap BitmapHandle)
	RenderPageBitmap func(bitmap BitmapHandle, page PageHandle, startX, startY, sizeX, sizeY, rotate, flags int32)

	TextLoadPage   func(page PageHandle) TextPageHandle
	TextClosePage  func(textPage TextPageHandle)
	TextCountChars func(textPage TextPageHandle) int32
	TextGetText    func(textPage TextPageHandle, start, count int32, result *uint16) int32
}

// Open loads the PDFium shared library at path, resolves the bulk binding
// table and registers the typed entry points. On any missing symbol the
// library is unloaded and an error wrapping ErrSymbolNotFound is returned.
func Open(path string) (*Library, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, err
	}

	lib := &Library{handle: handle}
	if lib.binding, err = resolveBinding(handle); err != nil {
		closeLibrary(handle)
		return nil, err
	}

	for _, sym := range []struct {
		fptr any
		name string
	}{
		{&lib.InitLibraryWithConfig, "FPDF_InitLibraryWithConfig"},
		{&lib.DestroyLibrary, "FPDF_DestroyLibrary"},
		{&lib.GetLastError, "FPDF_GetLastError"},
		{&lib.LoadCustomDocument, "FPDF_LoadCustomDocument"},
		{&lib.CloseDocument, "FPDF_CloseDocument"},
		{&lib.GetPageCount, "FPDF_GetPageCount"},
		{&lib.LoadPage, "FPDF_LoadPage"},
		{&lib.ClosePage, "FPDF_ClosePage"},
		{&lib.GetPageWidthF, "FPDF_GetPageWidthF"},
		{&lib.GetPageHeightF, "FPDF_GetPageHeightF"},
		{&lib.BitmapCreateEx, "FPDFBitmap_CreateEx"},
		{&lib.BitmapFillRect, "FPDFBitmap_FillRect"},
		{&lib.BitmapGetBuffer, "FPDFBitmap_GetBuffer"},
		{&lib.BitmapGetStride, "FPDFBitmap_GetStride"},
		{&lib.BitmapDestroy, "FPDFBitmap_Destroy"},
		{&lib.RenderPageBitmap, "FPDF_RenderPageBitmap"},
		{&lib.TextLoadPage, "FPDFText_LoadPage"},
		{&lib.TextClosePage, "FPDFText_ClosePage"},
		{&lib.TextCountChars, "FPDFText_CountChars"},
		{&lib.TextGetText, "FPDFText_GetText"},
	} {
		addr, err := lookupSymbol(handle, sym.name)
		if err != nil {
			closeLibrary(handle)
			return nil, err
		}
		purego.RegisterFunc(sym.fptr, addr)
	}
	return lib, nil
}

// Binding returns the addresses of every symbol in SymbolNames, in table
// order, for bulk dynamic binding by position. The returned slice is a copy.
func (l *Library) Binding() []uintptr {
	return append([]uintptr(nil), l.binding...)
}

// LastError reports PDFium's thread-local error code for the most recent
// failed call.
func (l *Library) LastError() uint64 {
	if l.GetLastError == nil {
		return ErrCodeUnknown
	}
	return uint64(l.GetLastError())
}

// Close unloads the shared library. The Library must not be used afterward;
// the caller is responsible for calling DestroyLibrary first.
func (l *Library) Close() error {
	if l.handle == 0 {
		return ErrClosed
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}

// CString converts s to a NUL-terminated byte pointer for a C string
// argument. The empty string maps to nil, which PDFium treats as "no value".
func CString(s string) *byte {
	if s == "" {
		return nil
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}
