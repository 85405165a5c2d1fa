// Command textpath renders text into an SVG path using textpath.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/text"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TTF/OTF font file (default: Go Regular)")
		input    = flag.String("text", "Hello, textpath!\nVector glyph outlines.", "text to render")
		row      = flag.Int("row", 20000, "maximum row length in font units")
		drop     = flag.Int("drop", 0, "row drop in font units (default: minus the font line height)")
		size     = flag.Float64("size", 48, "em size in output units")
		shaper   = flag.String("shaper", "gotext", "shaper: gotext or builtin")
		dir      = flag.String("dir", "ltr", "text direction for gotext: ltr, rtl or auto")
		output   = flag.String("output", "textpath.svg", "output SVG file")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		textpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := newShaper(*shaper, *dir)
	if err != nil {
		log.Fatal(err)
	}

	data := goregular.TTF
	if *fontPath != "" {
		// #nosec G304 -- font path comes from the command line
		data, err = os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
	}

	src, err := text.NewFontSource(data)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() { _ = src.Close() }()

	fonts := textpath.New(textpath.WithShaper(s))
	if err := fonts.PushSource(src); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	rowDrop := *drop
	if rowDrop == 0 {
		rowDrop = -src.Metrics().LineHeight()
	}

	path, pen := fonts.Collect(*input, *row, rowDrop)
	if err := writeSVG(*output, path, *size); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s: %d commands, pen (%d, %d), saved to %s\n",
		src.Name(), path.Len(), pen.X, pen.Y, *output)
}

func newShaper(name, dir string) (text.Shaper, error) {
	switch name {
	case "builtin":
		return &text.BuiltinShaper{}, nil
	case "gotext":
	default:
		return nil, fmt.Errorf("unknown shaper %q", name)
	}

	var d text.Direction
	switch dir {
	case "ltr":
		d = text.DirectionLTR
	case "rtl":
		d = text.DirectionRTL
	case "auto":
		d = text.DirectionAuto
	default:
		return nil, fmt.Errorf("unknown direction %q", dir)
	}
	return text.NewGoTextShaper(text.WithDirection(d)), nil
}

func writeSVG(name string, path *textpath.Path, size float64) (err error) {
	const margin = 8

	scaled := path.Transform(textpath.Translate(margin, margin).Multiply(textpath.Scale(size, size)))
	b := scaled.Bounds()
	width := math.Ceil(math.Max(b.Max.X, 0) + margin)
	height := math.Ceil(math.Max(b.Max.Y, 0) + margin)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	fmt.Fprintf(w, `<path fill="black" fill-rule="nonzero" d="%s"/>`+"\n", scaled.SVGData(2))
	fmt.Fprintln(w, `</svg>`)
	return w.Flush()
}
