package pdfrx

import "image/color"

// InitOption configures library initialization.
type InitOption func(*initOptions)

type initOptions struct {
	libraryPath string
}

// WithLibraryPath makes Init load the PDFium shared library from an explicit
// path instead of probing the loader registry.
func WithLibraryPath(path string) InitOption {
	return func(o *initOptions) { o.libraryPath = path }
}

// OpenOption configures document opening.
type OpenOption func(*openOptions)

type openOptions struct {
	password string
}

// WithPassword supplies the password for an encrypted document. PDFium
// accepts either the user or the owner password.
func WithPassword(password string) OpenOption {
	return func(o *openOptions) { o.password = password }
}

// RenderOption configures page rendering.
type RenderOption func(*renderOptions)

type renderOptions struct {
	scale       float64
	background  color.Color
	annotations bool
	supersample int
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		scale:       1,
		background:  color.White,
		supersample: 1,
	}
}

// WithScale sets the render scale relative to the page's natural size at
// 72 DPI. The default is 1.
func WithScale(scale float64) RenderOption {
	return func(o *renderOptions) { o.scale = scale }
}

// WithDPI sets the render resolution in dots per inch. WithDPI(144) is
// equivalent to WithScale(2).
func WithDPI(dpi float64) RenderOption {
	return func(o *renderOptions) { o.scale = dpi / 72 }
}

// WithBackground sets the color the bitmap is cleared to before the page is
// drawn onto it. The default is opaque white.
func WithBackground(c color.Color) RenderOption {
	return func(o *renderOptions) { o.background = c }
}

// WithAnnotations includes annotation appearances in the rendered output.
func WithAnnotations() RenderOption {
	return func(o *renderOptions) { o.annotations = true }
}

// WithSupersampling renders at factor times the requested size and
// downsamples to the target with a Catmull-Rom kernel. Factors above 1 cost
// memory and time but smooth thin strokes and small text. Factors below 1
// are treated as 1.
func WithSupersampling(factor int) RenderOption {
	return func(o *renderOptions) {
		if factor < 1 {
			factor = 1
		}
		o.supersample = factor
	}
}
