// Package pdfrx is a thin Go binding for the PDFium PDF rendering library.
//
// # Overview
//
// pdfrx loads PDFium at runtime through dynamic symbol lookup (no cgo) and
// exposes documents, pages, page rendering and text extraction. All parsing
// and rendering happens inside PDFium; this package is glue. Its one piece
// of real machinery is the blocking file access bridge in package
// fileaccess, which lets PDFium pull document bytes synchronously from
// sources that can only deliver them asynchronously.
//
// # Quick Start
//
//	if err := pdfrx.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer pdfrx.Shutdown()
//
//	doc, err := pdfrx.OpenFile("report.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer doc.Close()
//
//	page, err := doc.Page(0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer page.Close()
//
//	img, err := page.Render(pdfrx.WithScale(2))
//
// # Locating the library
//
// Init finds the PDFium shared library through package loader: an explicit
// path (WithLibraryPath or loader.SetPath), the PDFRX_LIBRARY_PATH
// environment variable, an embedded blob (loader.FromBlob), or the system
// search path, in that order.
//
// # Threading
//
// PDFium itself is not thread-safe; calls into one Document must be
// serialized by the caller. Byte sources complete reads on their own
// goroutines, so a Document must not be used from the goroutine that
// delivers its bytes.
package pdfrx
