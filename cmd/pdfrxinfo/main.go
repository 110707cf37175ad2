// Command pdfrxinfo inspects a PDF through the pdfrx binding: it prints the
// page count and page sizes, and can render a page to PNG or dump its text.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/pdfrx/pdfrx-go"
)

func main() {
	var (
		library  = flag.String("library", "", "path to the pdfium shared library (default: auto-detect)")
		password = flag.String("password", "", "document password")
		page     = flag.Int("page", -1, "page to render or extract (zero-based, -1 for none)")
		output   = flag.String("output", "", "PNG file to render the selected page to")
		text     = flag.Bool("text", false, "print the selected page's text")
		scale    = flag.Float64("scale", 1, "render scale")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.pdf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *verbose {
		pdfrx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var initOpts []pdfrx.InitOption
	if *library != "" {
		initOpts = append(initOpts, pdfrx.WithLibraryPath(*library))
	}
	if err := pdfrx.Init(initOpts...); err != nil {
		log.Fatal(err)
	}
	defer pdfrx.Shutdown()

	var openOpts []pdfrx.OpenOption
	if *password != "" {
		openOpts = append(openOpts, pdfrx.WithPassword(*password))
	}
	doc, err := pdfrx.OpenFile(flag.Arg(0), openOpts...)
	if err != nil {
		log.Fatal(err)
	}
	defer doc.Close()

	fmt.Printf("%s: %d pages\n", flag.Arg(0), doc.PageCount())
	for i := 0; i < doc.PageCount(); i++ {
		p, err := doc.Page(i)
		if err != nil {
			log.Fatal(err)
		}
		w, h := p.Size()
		fmt.Printf("  page %d: %.1f x %.1f pt\n", i, w, h)
		p.Close()
	}

	if *page < 0 {
		return
	}
	p, err := doc.Page(*page)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	if *text {
		content, err := p.Text()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(content)
	}
	if *output != "" {
		img, err := p.Render(pdfrx.WithScale(*scale))
		if err != nil {
			log.Fatal(err)
		}
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("rendered page %d to %s\n", *page, *output)
	}
}
