package pdfrx

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"
	"unsafe"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/text/encoding/unicode"

	"github.com/pdfrx/pdfrx-go/internal/ffi"
)

// Page is a loaded page of a Document.
type Page struct {
	doc    *Document
	index  int
	handle ffi.PageHandle
	closed bool
}

// Index returns the page's zero-based index in its document.
func (p *Page) Index() int { return p.index }

// Size returns the page dimensions in points (1/72 inch).
func (p *Page) Size() (width, height float64) {
	p.doc.mu.Lock()
	defer p.doc.mu.Unlock()
	if p.closed || p.doc.closed {
		return 0, 0
	}
	return float64(p.doc.lib.GetPageWidthF(p.handle)), float64(p.doc.lib.GetPageHeightF(p.handle))
}

// Render rasterizes the page into an NRGBA image. The output size is the
// page's natural 72 DPI size scaled by WithScale or WithDPI.
func (p *Page) Render(opts ...RenderOption) (*image.NRGBA, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p.doc.mu.Lock()
	defer p.doc.mu.Unlock()
	if p.closed || p.doc.closed {
		return nil, ErrClosed
	}
	lib := p.doc.lib

	widthPt := float64(lib.GetPageWidthF(p.handle))
	heightPt := float64(lib.GetPageHeightF(p.handle))
	outW := int(math.Ceil(widthPt * o.scale))
	outH := int(math.Ceil(heightPt * o.scale))
	if outW <= 0 || outH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, outW, outH)
	}
	rasterW := outW * o.supersample
	rasterH := outH * o.supersample

	bitmap := lib.BitmapCreateEx(int32(rasterW), int32(rasterH), ffi.BitmapBGRA, 0, 0)
	if bitmap == 0 {
		return nil, fmt.Errorf("%w: bitmap %dx%d", ErrPage, rasterW, rasterH)
	}
	defer lib.BitmapDestroy(bitmap)

	lib.BitmapFillRect(bitmap, 0, 0, int32(rasterW), int32(rasterH), argb(o.background))

	var flags int32
	if o.annotations {
		flags |= ffi.RenderAnnotations
	}
	lib.RenderPageBitmap(bitmap, p.handle, 0, 0, int32(rasterW), int32(rasterH), 0, flags)

	buf := lib.BitmapGetBuffer(bitmap)
	stride := int(lib.BitmapGetStride(bitmap))
	if buf == nil || stride < rasterW*4 {
		return nil, fmt.Errorf("%w: no bitmap buffer", ErrPage)
	}
	src := unsafe.Slice((*byte)(buf), stride*rasterH)

	img := image.NewNRGBA(image.Rect(0, 0, rasterW, rasterH))
	for y := 0; y < rasterH; y++ {
		row := src[y*stride:]
		out := img.Pix[y*img.Stride:]
		for x := 0; x < rasterW; x++ {
			// BGRA to RGBA
			out[x*4+0] = row[x*4+2]
			out[x*4+1] = row[x*4+1]
			out[x*4+2] = row[x*4+0]
			out[x*4+3] = row[x*4+3]
		}
	}

	if o.supersample == 1 {
		return img, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, outW, outH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Text extracts the page's text content in reading order, decoded from the
// engine's UTF-16LE representation.
func (p *Page) Text() (string, error) {
	p.doc.mu.Lock()
	defer p.doc.mu.Unlock()
	if p.closed || p.doc.closed {
		return "", ErrClosed
	}
	lib := p.doc.lib

	textPage := lib.TextLoadPage(p.handle)
	if textPage == 0 {
		return "", ErrTextUnavailable
	}
	defer lib.TextClosePage(textPage)

	count := lib.TextCountChars(textPage)
	if count <= 0 {
		return "", nil
	}

	// One extra slot for the terminating NUL the engine writes.
	units := make([]uint16, count+1)
	n := lib.TextGetText(textPage, 0, count, &units[0])
	if n <= 0 {
		return "", nil
	}
	units = units[:n]
	if len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}

	raw := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(raw[2*i:], u)
	}
	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("pdfrx: decode text: %w", err)
	}
	return string(decoded), nil
}

// Close releases the native page. Close is idempotent.
func (p *Page) Close() error {
	p.doc.mu.Lock()
	defer p.doc.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if !p.doc.closed {
		p.doc.lib.ClosePage(p.handle)
	}
	p.handle = 0
	return nil
}

// argb packs a color into the engine's 0xAARRGGBB fill format.
func argb(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return uint32(a>>8)<<24 | uint32(r>>8)<<16 | uint32(g>>8)<<8 | uint32(b>>8)
}
