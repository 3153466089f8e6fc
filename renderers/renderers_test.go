package renderers

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/scatter"
	"github.com/tdewolff/scatter/renderers/web"
	"github.com/tdewolff/test"
)

func testChart(t *testing.T) *scatter.Chart {
	ds, err := scatter.LoadFile("../testdata/data.csv")
	test.Error(t, err)
	ch, err := scatter.New(ds, scatter.DefaultConfig)
	test.Error(t, err)
	return ch
}

func TestFormat(t *testing.T) {
	var tts = []struct {
		filename string
		format   string
	}{
		{"out.svg", "svg"},
		{"out.SVG", "svg"},
		{"out.htm", "html"},
		{"dir/out.html", "html"},
		{"out.jpeg", "jpg"},
		{"out.tif", "tiff"},
		{"out.pgf", "tex"},
		{"out", ""},
	}
	for _, tt := range tts {
		t.Run(tt.filename, func(t *testing.T) {
			test.String(t, Format(tt.filename), tt.format)
		})
	}
	test.That(t, IsBinary("png"))
	test.That(t, IsBinary("pdf"))
	test.That(t, !IsBinary("svg"))
	test.That(t, !IsBinary("html"))
}

func TestWriteToPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, WriteTo(buf, "png", testChart(t), canvas.DPMM(1.0)))
	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 960)
	test.T(t, img.Bounds().Dy(), 500)
}

func TestWriteToSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, WriteTo(buf, "svg", testChart(t), canvas.DPMM(2.0)))
	test.That(t, strings.HasPrefix(buf.String(), "<svg"), "svg root element")
}

func TestWriteToHTML(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, WriteTo(buf, "html", testChart(t), &web.Options{Minify: false}))
	test.That(t, strings.Contains(buf.String(), `class="tooltip"`))
	test.T(t, strings.Count(buf.String(), "<circle"), 20)
}

func TestWriteToUnknown(t *testing.T) {
	err := WriteTo(&bytes.Buffer{}, "doc", testChart(t))
	test.That(t, err != nil)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "chart.pdf")
	test.Error(t, Write(filename, testChart(t)))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.That(t, bytes.HasPrefix(b, []byte("%PDF")), "pdf header")

	test.That(t, Write(filepath.Join(dir, "chart.xyz"), testChart(t)) != nil)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "chart.out")
	test.Error(t, WriteFile(filename, "svg", testChart(t)))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.That(t, bytes.Contains(b, []byte("<svg")), "svg element")

	filename = filepath.Join(dir, "chart.doc")
	test.That(t, WriteFile(filename, "doc", testChart(t)) != nil)
	_, err = os.Stat(filename)
	test.That(t, os.IsNotExist(err), "no file for unknown format")
}
