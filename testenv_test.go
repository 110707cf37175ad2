package pdfrx

import (
	"sync"
	"unicode/utf16"
	"unsafe"

	"github.com/pdfrx/pdfrx-go/internal/ffi"
)

// fakeEngine simulates the native engine behind an ffi.Library so document
// and page logic can be exercised without a shared library. The fake
// understands a toy document format: bytes "%PDF", then one byte of page
// count, then arbitrary payload. All pages are 100x200 points and carry the
// same text.
type fakeEngine struct {
	mu sync.Mutex

	docs      map[ffi.DocumentHandle]*fakeDoc
	pages     map[ffi.PageHandle]*fakeDoc
	textPages map[ffi.TextPageHandle]struct{}
	bitmaps   map[ffi.BitmapHandle]*fakeBitmap
	next      uintptr

	password string // required document password, empty for none
	text     string // per-page text content

	openDocs, openPages, openTextPages, openBitmaps int
}

type fakeDoc struct {
	pageCount int
}

type fakeBitmap struct {
	width, height, stride int
	pix                   []byte
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		docs:      make(map[ffi.DocumentHandle]*fakeDoc),
		pages:     make(map[ffi.PageHandle]*fakeDoc),
		textPages: make(map[ffi.TextPageHandle]struct{}),
		bitmaps:   make(map[ffi.BitmapHandle]*fakeBitmap),
		next:      1,
		text:      "Hello, PDF 世界",
	}
}

// fakeDocument builds bytes in the fake's document format.
func fakeDocument(pageCount int, payload int) []byte {
	data := append([]byte("%PDF"), byte(pageCount))
	return append(data, make([]byte, payload)...)
}

func goString(p *byte) string {
	if p == nil {
		return ""
	}
	var out []byte
	for i := 0; ; i++ {
		c := *(*byte)(unsafe.Add(unsafe.Pointer(p), i))
		if c == 0 {
			return string(out)
		}
		out = append(out, c)
	}
}

// library assembles an ffi.Library whose entry points run against the fake.
func (e *fakeEngine) library() *ffi.Library {
	lib := &ffi.Library{}

	lib.LoadCustomDocument = func(fa *ffi.FileAccess, password *byte) ffi.DocumentHandle {
		header := make([]byte, 5)
		if int64(fa.FileLen) < 5 || fa.Read(0, header) == 0 {
			return 0
		}
		if string(header[:4]) != "%PDF" {
			return 0
		}
		if e.password != "" && goString(password) != e.password {
			return 0
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		e.next++
		h := ffi.DocumentHandle(e.next)
		e.docs[h] = &fakeDoc{pageCount: int(header[4])}
		e.openDocs++
		return h
	}
	lib.CloseDocument = func(doc ffi.DocumentHandle) {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.docs, doc)
		e.openDocs--
	}
	lib.GetPageCount = func(doc ffi.DocumentHandle) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		if d := e.docs[doc]; d != nil {
			return int32(d.pageCount)
		}
		return 0
	}

	lib.LoadPage = func(doc ffi.DocumentHandle, index int32) ffi.PageHandle {
		e.mu.Lock()
		defer e.mu.Unlock()
		d := e.docs[doc]
		if d == nil || int(index) >= d.pageCount {
			return 0
		}
		e.next++
		h := ffi.PageHandle(e.next)
		e.pages[h] = d
		e.openPages++
		return h
	}
	lib.ClosePage = func(page ffi.PageHandle) {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.pages, page)
		e.openPages--
	}
	lib.GetPageWidthF = func(ffi.PageHandle) float32 { return 100 }
	lib.GetPageHeightF = func(ffi.PageHandle) float32 { return 200 }

	lib.BitmapCreateEx = func(width, height, format int32, firstScan uintptr, stride int32) ffi.BitmapHandle {
		if width <= 0 || height <= 0 || format != ffi.BitmapBGRA {
			return 0
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		e.next++
		h := ffi.BitmapHandle(e.next)
		e.bitmaps[h] = &fakeBitmap{
			width:  int(width),
			height: int(height),
			stride: int(width) * 4,
			pix:    make([]byte, int(width)*int(height)*4),
		}
		e.openBitmaps++
		return h
	}
	lib.BitmapFillRect = func(bitmap ffi.BitmapHandle, left, top, width, height int32, color uint32) {
		e.mu.Lock()
		b := e.bitmaps[bitmap]
		e.mu.Unlock()
		if b == nil {
			return
		}
		bgra := []byte{byte(color), byte(color >> 8), byte(color >> 16), byte(color >> 24)}
		for y := int(top); y < int(top+height) && y < b.height; y++ {
			for x := int(left); x < int(left+width) && x < b.width; x++ {
				copy(b.pix[y*b.stride+x*4:], bgra)
			}
		}
	}
	lib.RenderPageBitmap = func(bitmap ffi.BitmapHandle, page ffi.PageHandle, startX, startY, sizeX, sizeY, rotate, flags int32) {
		e.mu.Lock()
		b := e.bitmaps[bitmap]
		e.mu.Unlock()
		if b == nil {
			return
		}
		// Paint one blue pixel in the corner; the rest stays background.
		copy(b.pix, []byte{0xFF, 0x00, 0x00, 0xFF})
	}
	lib.BitmapGetBuffer = func(bitmap ffi.BitmapHandle) unsafe.Pointer {
		e.mu.Lock()
		defer e.mu.Unlock()
		if b := e.bitmaps[bitmap]; b != nil {
			return unsafe.Pointer(&b.pix[0])
		}
		return nil
	}
	lib.BitmapGetStride = func(bitmap ffi.BitmapHandle) int32 {
		e.mu.Lock()
		defer e.mu.Unlock()
		if b := e.bitmaps[bitmap]; b != nil {
			return int32(b.stride)
		}
		return 0
	}
	lib.BitmapDestroy = func(bitmap ffi.BitmapHandle) {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.bitmaps, bitmap)
		e.openBitmaps--
	}

	lib.TextLoadPage = func(page ffi.PageHandle) ffi.TextPageHandle {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.pages[page] == nil {
			return 0
		}
		e.next++
		h := ffi.TextPageHandle(e.next)
		e.textPages[h] = struct{}{}
		e.openTextPages++
		return h
	}
	lib.TextClosePage = func(textPage ffi.TextPageHandle) {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.textPages, textPage)
		e.openTextPages--
	}
	lib.TextCountChars = func(ffi.TextPageHandle) int32 {
		return int32(len(utf16.Encode([]rune(e.text))))
	}
	lib.TextGetText = func(textPage ffi.TextPageHandle, start, count int32, result *uint16) int32 {
		units := utf16.Encode([]rune(e.text))
		if int(start) >= len(units) {
			return 0
		}
		units = append(units[start:min(int(start+count), len(units))], 0)
		copy(unsafe.Slice(result, len(units)), units)
		return int32(len(units))
	}

	return lib
}
