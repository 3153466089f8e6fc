package renderers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tdewolff/canvas"
	canvasRenderers "github.com/tdewolff/canvas/renderers"
	"github.com/tdewolff/scatter"
	"github.com/tdewolff/scatter/renderers/web"
)

// Formats lists the supported output formats.
var Formats = []string{"html", "svg", "svgz", "pdf", "png", "jpg", "gif", "tiff", "tex"}

// Format returns the output format of a filename by its extension.
func Format(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "htm":
		return "html"
	case "jpeg":
		return "jpg"
	case "tif":
		return "tiff"
	case "pgf":
		return "tex"
	}
	return ext
}

// IsBinary is true for formats that should not be written to a terminal.
func IsBinary(format string) bool {
	switch format {
	case "html", "svg", "tex":
		return false
	}
	return true
}

// Write writes the chart to a file, with the format chosen by the file extension. Options are canvas.Resolution and *web.Options, other options are passed to the canvas writers.
func Write(filename string, ch *scatter.Chart, opts ...interface{}) error {
	return WriteFile(filename, Format(filename), ch, opts...)
}

// WriteFile writes the chart to a file in the given format. No file is created for an unknown format.
func WriteFile(filename, format string, ch *scatter.Chart, opts ...interface{}) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("unknown format: %v", format)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteTo(f, format, ch, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo writes the chart to w in the given format.
func WriteTo(w io.Writer, format string, ch *scatter.Chart, opts ...interface{}) error {
	var webOptions *web.Options
	canvasOptions := []interface{}{}
	for _, opt := range opts {
		switch o := opt.(type) {
		case *web.Options:
			webOptions = o
		default:
			canvasOptions = append(canvasOptions, o)
		}
	}

	if format == "html" {
		return web.Write(w, ch, webOptions)
	}

	var writer canvas.Writer
	switch format {
	case "png":
		writer = canvasRenderers.PNG(canvasOptions...)
	case "jpg":
		writer = canvasRenderers.JPEG(canvasOptions...)
	case "gif":
		writer = canvasRenderers.GIF(canvasOptions...)
	case "tiff":
		writer = canvasRenderers.TIFF(canvasOptions...)
	case "svg":
		writer = canvasRenderers.SVG(vectorOptions(canvasOptions)...)
	case "svgz":
		writer = canvasRenderers.SVGZ(vectorOptions(canvasOptions)...)
	case "pdf":
		writer = canvasRenderers.PDF(vectorOptions(canvasOptions)...)
	case "tex":
		writer = canvasRenderers.TeX(vectorOptions(canvasOptions)...)
	default:
		return fmt.Errorf("unknown format: %v", format)
	}
	return writer(w, ch.Canvas())
}

// vectorOptions drops the resolution, which only applies to raster formats.
func vectorOptions(opts []interface{}) []interface{} {
	vopts := opts[:0:0]
	for _, opt := range opts {
		if _, ok := opt.(canvas.Resolution); !ok {
			vopts = append(vopts, opt)
		}
	}
	return vopts
}
